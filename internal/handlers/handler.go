package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/vaughan-dsouza/salesdesk/internal/logger"
	"github.com/vaughan-dsouza/salesdesk/internal/models"
	"github.com/vaughan-dsouza/salesdesk/internal/service"
)

// UserService is the user operations the HTTP layer needs.
type UserService interface {
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	Register(ctx context.Context, in models.RegisterInput) (string, error)
	Confirm(ctx context.Context, token string) (models.User, error)
	Login(ctx context.Context, email, password string) (service.LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	Session(ctx context.Context, sessionID string) (models.Session, error)
	Delete(ctx context.Context, email string) error
	Update(ctx context.Context, in models.UpdateUserInput) (models.User, error)
}

// SaleService is the sale operations the HTTP layer needs.
type SaleService interface {
	List(ctx context.Context, filter models.SaleFilter) ([]models.Sale, error)
	DailyStats(ctx context.Context) (models.DailyStats, error)
	ClientStats(ctx context.Context) (models.ClientStats, error)
	Create(ctx context.Context, in models.SaleInput) (models.Sale, error)
	CreateBulk(ctx context.Context, items []models.SaleInput) ([]models.Sale, error)
}

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

type Handler struct {
	Users *UserHandler
	Sales *SaleHandler
}

func NewHandler(users UserService, sales SaleService, cookie CookieConfig, log *logger.Logger) *Handler {
	return &Handler{
		Users: NewUserHandler(users, cookie, log),
		Sales: NewSaleHandler(sales, log),
	}
}

// Ping answers liveness probes.
func Ping(w http.ResponseWriter, _ *http.Request) {
	text(w, http.StatusOK, "pong")
}

// Root is the greeting served on "/".
func Root(w http.ResponseWriter, _ *http.Request) {
	text(w, http.StatusOK, "HEY!")
}

func text(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
