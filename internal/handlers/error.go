package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/vaughan-dsouza/salesdesk/internal/apperr"
	"github.com/vaughan-dsouza/salesdesk/internal/logger"
	"github.com/vaughan-dsouza/salesdesk/internal/utils"
)

type errorBody struct {
	Message string              `json:"message"`
	Errors  []apperr.FieldError `json:"errors,omitempty"`
}

// fail writes err to the client. Only *apperr.Error details are exposed;
// anything else is logged and reported as an internal error.
func fail(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error) {
	if appErr, ok := apperr.As(err); ok {
		utils.JSON(w, appErr.Status(), errorBody{Message: appErr.Message, Errors: appErr.Fields})
		return
	}

	args := []any{
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		"error", err.Error(),
	}
	if id, ok := utils.IdentityFromContext(r.Context()); ok {
		args = append(args, "user_id", id.UserID)
	}
	log.Error("request failed", args...)
	utils.Message(w, http.StatusInternalServerError, "internal server error")
}

// badBody reports a body that could not be decoded.
func badBody(w http.ResponseWriter, err error) {
	msg := "invalid json"
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, utils.ErrEmptyBody):
		msg = "request body is required"
	case errors.As(err, &maxErr):
		msg = "request body too large"
	}
	utils.Message(w, http.StatusBadRequest, msg)
}
