// Package main provides the entry point for the HTTP server.
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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/crmkit/leads-service/internal/config"
	"github.com/crmkit/leads-service/internal/database"
	"github.com/crmkit/leads-service/internal/database/migrate"
	"github.com/crmkit/leads-service/internal/health"
	leadRouter "github.com/crmkit/leads-service/internal/lead/router"
	"github.com/crmkit/leads-service/internal/middleware"
	"github.com/crmkit/leads-service/internal/notification"
	"github.com/crmkit/leads-service/pkg/logger"
)

func main() {
	// .env is optional; deployed environments set variables directly.
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	appLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	db, err := database.New()
	if err != nil {
		appLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			appLogger.Errorw("failed to close database", "error", closeErr)
		}
	}()

	if err := migrate.Migrate(db); err != nil {
		appLogger.Fatalw("failed to apply migrations", "error", err)
	}

	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(middleware.Logger(appLogger))
	r.Use(middleware.Recovery(appLogger))
	r.Use(middleware.Metrics())

	healthHandler := health.New(db, appLogger)
	r.GET("/health", healthHandler.Check)
	r.GET("/health/details", healthHandler.Details)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	sender := notification.NewSender(cfg.SMTP, appLogger)
	leadRouter.RegisterRoutes(r, db, cfg.CRM, sender, appLogger)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Infow("starting server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalw("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Errorw("forced shutdown", "error", err)
	}

	appLogger.Infow("server stopped")
}
