package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/vaughan-dsouza/salesdesk/internal/apperr"
	"github.com/vaughan-dsouza/salesdesk/internal/logger"
	"github.com/vaughan-dsouza/salesdesk/internal/models"
	"github.com/vaughan-dsouza/salesdesk/internal/utils"
)

type SaleHandler struct {
	svc SaleService
	log *logger.Logger
}

func NewSaleHandler(svc SaleService, log *logger.Logger) *SaleHandler {
	return &SaleHandler{svc: svc, log: log}
}

// createSaleReq is either a single sale or a batch under "bulk".
type createSaleReq struct {
	models.SaleInput
	Bulk *[]models.SaleInput `json:"bulk"`
}

type saleResp struct {
	Message string      `json:"message"`
	Sale    models.Sale `json:"sale"`
}

type bulkResp struct {
	Message string        `json:"message"`
	Sales   []models.Sale `json:"sales"`
}

// ---------------------- LIST ----------------------

func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseSaleFilter(r.URL.Query())
	if err != nil {
		fail(w, r, h.log, err)
		return
	}

	sales, err := h.svc.List(r.Context(), filter)
	if err != nil {
		fail(w, r, h.log, err)
		return
	}

	utils.JSON(w, http.StatusOK, sales)
}

func parseSaleFilter(q url.Values) (models.SaleFilter, error) {
	filter := models.SaleFilter{
		Product: q.Get("product"),
		User:    q.Get("user"),
		Date:    q.Get("date"),
	}

	var errs []apperr.FieldError
	number := func(name string) *float64 {
		raw := q.Get(name)
		if raw == "" {
			return nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs = append(errs, apperr.FieldError{Field: name, Message: "must be a number"})
			return nil
		}
		return &v
	}
	filter.Quantity = number("quantity")
	filter.Price = number("price")
	filter.Total = number("total")

	if len(errs) > 0 {
		return models.SaleFilter{}, apperr.Validation("Invalid filter", errs...)
	}
	return filter, nil
}

// ---------------------- STATS ----------------------

func (h *SaleHandler) DailyStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.DailyStats(r.Context())
	if err != nil {
		fail(w, r, h.log, err)
		return
	}

	utils.JSON(w, http.StatusOK, stats)
}

func (h *SaleHandler) ClientStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.ClientStats(r.Context())
	if err != nil {
		fail(w, r, h.log, err)
		return
	}

	utils.JSON(w, http.StatusOK, stats)
}

// ---------------------- CREATE ----------------------

func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSaleReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		badBody(w, err)
		return
	}

	if req.Bulk != nil {
		sales, err := h.svc.CreateBulk(r.Context(), *req.Bulk)
		if err != nil {
			fail(w, r, h.log, err)
			return
		}
		utils.JSON(w, http.StatusCreated, bulkResp{Message: "Bulk sales created successfully", Sales: sales})
		return
	}

	sale, err := h.svc.Create(r.Context(), req.SaleInput)
	if err != nil {
		fail(w, r, h.log, err)
		return
	}

	utils.JSON(w, http.StatusCreated, saleResp{Message: "Sale created successfully", Sale: sale})
}
