// @title Tourbook Web API
// @version 1.0
// @description Dashboard backend for the tour-booking marketplace web app
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

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

	"github.com/rs/cors"
	"go.uber.org/zap"

	_ "TOURBOOK_WEB/docs" // This is required for swagger
	"TOURBOOK_WEB/internal/apiclient"
	"TOURBOOK_WEB/internal/config"
	"TOURBOOK_WEB/internal/dashboard"
	"TOURBOOK_WEB/internal/handlers"
	"TOURBOOK_WEB/internal/logger"
	"TOURBOOK_WEB/internal/metrics"
	"TOURBOOK_WEB/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	appLogger := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	defer appLogger.Sync()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	loc := cfg.Location()
	clock := func() time.Time { return time.Now().In(loc) }

	api := apiclient.New(cfg.APIBaseURL(), cfg.API.Timeout, appLogger, m)

	registry := dashboard.NewRegistry(dashboard.Deps{
		API:      api,
		Logger:   appLogger,
		Metrics:  m,
		PageSize: cfg.Dashboard.PageSize,
		Clock:    clock,
	}, cfg.Dashboard.SessionTTL)

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	janitorDone := make(chan struct{})
	go func() {
		defer close(janitorDone)
		registry.Run(janitorCtx, time.Minute)
	}()

	// --- HTTP Handlers ---
	router := routes.SetupRoutes(routes.Handlers{
		Health:    handlers.NewHealthHandler(api),
		Catalog:   handlers.NewCatalogHandler(api, cfg.Dashboard.CatalogPageSize, loc, clock, appLogger),
		Bookings:  handlers.NewBookingHandler(api, registry, loc, clock, appLogger),
		Dashboard: handlers.NewDashboardHandler(registry, loc, clock, appLogger),
		Session:   handlers.NewSessionHandler(registry, appLogger),
	}, &cfg.Auth, m, appLogger)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	// --- HTTP Server + Graceful Shutdown ---
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("HTTP server listening", zap.String("addr", srv.Addr), zap.String("api", cfg.APIBaseURL()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("ListenAndServe failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}

	stopJanitor()
	<-janitorDone
	appLogger.Info("Server stopped.")
}
