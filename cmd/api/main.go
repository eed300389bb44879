package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vaughan-dsouza/salesdesk/internal/config"
	"github.com/vaughan-dsouza/salesdesk/internal/db"
	"github.com/vaughan-dsouza/salesdesk/internal/handlers"
	"github.com/vaughan-dsouza/salesdesk/internal/logger"
	"github.com/vaughan-dsouza/salesdesk/internal/mailer"
	"github.com/vaughan-dsouza/salesdesk/internal/middleware"
	"github.com/vaughan-dsouza/salesdesk/internal/repository"
	"github.com/vaughan-dsouza/salesdesk/internal/router"
	"github.com/vaughan-dsouza/salesdesk/internal/service"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Println("No .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	dbConn, err := db.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer dbConn.Close()

	userRepo := repository.NewUserRepository(dbConn)
	sessionRepo := repository.NewSessionRepository(dbConn)
	saleRepo := repository.NewSaleRepository(dbConn)

	usersService := service.NewUsers(userRepo, sessionRepo, mailer.New(cfg.SMTP, logger), logger, service.UsersConfig{
		Secret:     cfg.JWT.Secret,
		SessionTTL: cfg.Session.TTL,
		BaseURL:    cfg.BaseURL,
	})
	salesService := service.NewSales(saleRepo, logger)

	h := handlers.NewHandler(usersService, salesService, handlers.CookieConfig{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TTL,
		Secure: cfg.Session.Secure,
	}, logger)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxy)
		go limiter.Run(ctx, time.Minute)
	}

	srv := &http.Server{
		Addr: ":" + cfg.HTTP.Port,
		Handler: router.New(h, router.Options{
			Secret:         cfg.JWT.Secret,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			Limiter:        limiter,
			TrustProxy:     cfg.RateLimit.TrustProxy,
			Logger:         logger,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Starting server on", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("shutdown complete")
}
