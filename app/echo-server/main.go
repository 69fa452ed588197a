package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediSense/app/echo-server/router"
	"mediSense/business/explanation"
	"mediSense/business/fleet"
	"mediSense/business/routing"
	"mediSense/business/telemetry"
	"mediSense/internal/middleware"
	"mediSense/internal/repository/gemini"
	"mediSense/internal/repository/memory"
	"mediSense/internal/rest"
	"mediSense/pkg/config"
	"mediSense/pkg/logger"
	"mediSense/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting MediSense", "version", cfg.App.Version)

	metrics.Init()

	// Init repositories
	routeCatalog := memory.NewRouteCatalogRepository()
	fleetRepo := memory.NewFleetRepository()

	// The generator is decided once at bootstrap: without a usable
	// credential the explanation service stays on the deterministic path.
	var generator explanation.TextGenerator
	if cfg.LLM.Configured() {
		generator = gemini.NewGeminiRepository(gemini.GeminiConfig{
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
		})
		logger.Info("External text generation enabled", "model", cfg.LLM.Model)
	} else {
		logger.Info("No text generation credential configured, reports use the deterministic template")
	}

	// Init services
	explanationService := explanation.NewService(generator, cfg.LLM.Timeout)
	routingService := routing.NewRoutingService(routeCatalog, explanationService)
	telemetryService := telemetry.NewService(telemetry.NewRandSource(cfg.Telemetry.Seed))
	fleetService := fleet.NewFleetService(fleetRepo, routeCatalog)

	// Init handlers
	telemetryHandler := rest.NewTelemetryHandler(telemetryService)
	routeHandler := rest.NewRouteCatalogHandler(routeCatalog)
	fleetHandler := rest.NewFleetHandler(fleetService)
	analysisHandler := rest.NewAnalysisHandler(routingService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupLogisticsRoutes(api, telemetryHandler, routeHandler, fleetHandler, analysisHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
