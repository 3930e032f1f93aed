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

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/light-bringer/artisan-storefront/internal/config"
	"github.com/light-bringer/artisan-storefront/internal/services"
	transporthttp "github.com/light-bringer/artisan-storefront/internal/transport/http"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Load configuration (.env is optional, env vars win)
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting artisan storefront",
		zap.String("storage_backend", cfg.StorageBackend),
		zap.String("http_port", cfg.HTTPPort),
		zap.String("metrics_port", cfg.MetricsPort),
	)

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 3. Metrics on a side listener
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := transporthttp.NewMetrics(registry)

	metricsServer := &http.Server{
		Addr:    ":" + cfg.MetricsPort,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}
	go func() {
		logger.Info("metrics listening", zap.String("addr", metricsServer.Addr))
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server error", zap.Error(err))
		}
	}()

	// 4. API server
	app := fiber.New(fiber.Config{
		AppName:               "artisan-storefront",
		DisableStartupMessage: true,
	})
	app.Use(metrics.Middleware())
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	serviceOpts.Handler.RegisterRoutes(app)

	go func() {
		logger.Info("http listening", zap.String("addr", ":"+cfg.HTTPPort))
		if err := app.Listen(":" + cfg.HTTPPort); err != nil {
			logger.Error("http server error", zap.Error(err))
		}
	}()

	// 5. Graceful shutdown handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("http shutdown error", zap.Error(err))
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics shutdown error", zap.Error(err))
	}

	return nil
}
