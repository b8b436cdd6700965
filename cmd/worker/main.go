package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/puIad/nlp-project/internal/bootstrap"
	"github.com/puIad/nlp-project/internal/config"
	"github.com/puIad/nlp-project/internal/observability/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	logger := logging.NewJSONLogger("worker", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	metricsServer := &http.Server{
		Addr:    ":" + cfg.WorkerMetricsPort,
		Handler: app.WorkerMetrics.Handler(),
	}
	go func() {
		logger.Info("worker metrics listening", "port", cfg.WorkerMetricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("worker metrics server error", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}()

	logger.Info("worker subscribed", "subject", cfg.NATSSubject)
	err = app.Queue.SubscribeCVUploaded(ctx, func(handlerCtx context.Context, cvID string) error {
		processCtx, cancel := context.WithTimeout(handlerCtx, 5*time.Minute)
		defer cancel()

		app.WorkerMetrics.StartCV()
		start := time.Now()
		processErr := app.ProcessUC.ProcessByID(processCtx, cvID)
		app.WorkerMetrics.FinishCV("worker", time.Since(start), processErr)
		if processErr != nil {
			logger.Error("cv processing failed", "cv_id", cvID, "error", processErr)
		}
		return processErr
	})
	if err != nil {
		logger.Error("worker subscribe error", "error", err)
		os.Exit(1)
	}
}
