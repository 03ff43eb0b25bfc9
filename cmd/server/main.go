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

	"sillah/internal/advisor"
	"sillah/internal/api"
	"sillah/internal/booking"
	"sillah/internal/config"
	"sillah/internal/logs"
	"sillah/internal/metrics"
	"sillah/internal/risk"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Logger
	sink := logs.NewSink(cfg.LogLevel)
	logger := logs.NewLogger(cfg.LogBufferSize, logs.ParseLevel(cfg.LogLevel), sink)

	// Metrics
	metricsRegistry := metrics.NewRegistry()

	// Advisory pipeline
	adv := advisor.NewAdvisor(
		risk.NewEvaluator(risk.DefaultCriteria()),
		booking.NewService(logger, nil),
		logger,
		metricsRegistry,
		cfg.DefaultClinic,
	)

	// API
	handler := api.NewHandler(adv, metricsRegistry, logger, cfg.Lang)
	mux := http.NewServeMux()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.RegisterRoutes(mux, handler, sink),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server started on :" + cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sink.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		sink.Errorf("graceful shutdown failed: %v", err)
	}
}
