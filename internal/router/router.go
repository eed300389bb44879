// Package router assembles the HTTP routes of the API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vaughan-dsouza/salesdesk/internal/handlers"
	"github.com/vaughan-dsouza/salesdesk/internal/logger"
	"github.com/vaughan-dsouza/salesdesk/internal/middleware"
)

// Options holds what the router needs besides the handlers. A nil Limiter
// disables rate limiting on login and register. TrustProxy reads client
// addresses from forwarding headers.
type Options struct {
	Secret         string
	AllowedOrigins []string
	Limiter        *middleware.RateLimiter
	TrustProxy     bool
	Logger         *logger.Logger
}

// New returns the API router. Registration, login, confirmation and the
// liveness routes are public; everything else requires a valid token.
func New(h *handlers.Handler, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logging(opts.Logger, opts.TrustProxy))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public
	r.Get("/", handlers.Root)
	r.Get("/ping", handlers.Ping)
	// The token in the query proves the identity of a mailed confirmation link.
	r.Get("/users/confirm", h.Users.Confirm)
	r.Group(func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(opts.Limiter.Limit)
		}

		r.Post("/users/register", h.Users.Register)
		r.Post("/users/login", h.Users.Login)
	})

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(opts.Secret))

		r.Get("/users", h.Users.List)
		r.Put("/users", h.Users.Update)
		r.Get("/users/session", h.Users.Session)
		r.Post("/users/logout", h.Users.Logout)
		r.Delete("/users/{email}", h.Users.Delete)

		r.Get("/sales", h.Sales.List)
		r.Post("/sales", h.Sales.Create)
		r.Get("/sales/stats", h.Sales.DailyStats)
		r.Get("/sales/clients-stats", h.Sales.ClientStats)
	})

	return r
}
