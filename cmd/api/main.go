package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/netutil"

	httpadapter "github.com/puIad/nlp-project/internal/adapters/http"
	"github.com/puIad/nlp-project/internal/bootstrap"
	"github.com/puIad/nlp-project/internal/config"
	"github.com/puIad/nlp-project/internal/observability/logging"
	"github.com/puIad/nlp-project/internal/observability/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	logger := logging.NewJSONLogger("api", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	httpMetrics := metrics.NewHTTPServerMetrics("api")
	handler, err := httpadapter.NewRouter(cfg, app.IngestUC, app.ReadUC, app.ReportUC, httpMetrics).Handler()
	if err != nil {
		logger.Error("build http handler failed", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		logger.Error("listen failed", "addr", server.Addr, "error", err)
		os.Exit(1)
	}
	if cfg.APIMaxConns > 0 {
		listener = netutil.LimitListener(listener, cfg.APIMaxConns)
	}

	go func() {
		logger.Info("api listening", "port", cfg.APIPort)
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("api server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("api shutdown error", "error", err)
	}
}
