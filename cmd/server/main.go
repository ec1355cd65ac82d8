package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/framlopez/uala-transactions-api/internal/config"
	"github.com/framlopez/uala-transactions-api/internal/handlers"
	"github.com/framlopez/uala-transactions-api/internal/middleware"
	"github.com/framlopez/uala-transactions-api/internal/services"
	"github.com/framlopez/uala-transactions-api/internal/upstream"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()

	e := newServer(cfg)

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func newServer(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
	}))

	source := upstream.NewClient(cfg.Upstream)
	metrics := services.NewPrometheusMetrics()

	dashboardService := services.NewDashboardService(source, metrics)
	transactionService := services.NewTransactionService(source, metrics)
	exportService := services.NewExportService(source, cfg.Export, metrics)

	profileHandler := handlers.NewProfileHandler(dashboardService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	downloadHandler := handlers.NewDownloadHandler(exportService)
	healthHandler := handlers.NewHealthCheckHandler()

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.GET("/me", profileHandler.GetProfile)
	api.GET("/me/summary", profileHandler.GetSummary)
	api.GET("/me/transactions", transactionHandler.ListTransactions)
	api.GET("/me/transactions/download", downloadHandler.DownloadTransactions)

	return e
}
