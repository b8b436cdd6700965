package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/puIad/nlp-project/internal/config"
	"github.com/puIad/nlp-project/internal/core/domain"
	"github.com/puIad/nlp-project/internal/core/ports"
	"github.com/puIad/nlp-project/internal/core/usecase"
	"github.com/puIad/nlp-project/internal/infrastructure/export/excel"
	"github.com/puIad/nlp-project/internal/infrastructure/extractor/pdf"
	"github.com/puIad/nlp-project/internal/infrastructure/graph/neo4j"
	"github.com/puIad/nlp-project/internal/infrastructure/queue/nats"
	"github.com/puIad/nlp-project/internal/infrastructure/repository/postgres"
	"github.com/puIad/nlp-project/internal/infrastructure/resilience"
	"github.com/puIad/nlp-project/internal/infrastructure/storage/localfs"
	"github.com/puIad/nlp-project/internal/infrastructure/tagger/spacyner"
	"github.com/puIad/nlp-project/internal/observability/metrics"
)

type App struct {
	Config config.Config
	Logger *slog.Logger

	Queue     ports.MessageQueue
	Repo      ports.CVRepository
	IngestUC  ports.CVIngestor
	ReadUC    ports.CVReader
	ProcessUC ports.CVProcessor
	ReportUC  ports.ReportService
	Analyzer  *usecase.Analyzer

	WorkerMetrics *metrics.WorkerMetrics

	closeFn func()
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewCVRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	executor := resilience.NewExecutor(resilience.DefaultConfig())
	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: executor,
	})
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	var tagger ports.EntityTagger
	if cfg.TaggerURL != "" {
		taggerExecutor := resilience.NewExecutor(resilience.SidecarConfig())
		tagger = spacyner.New(cfg.TaggerURL, time.Duration(cfg.TaggerTimeoutSeconds)*time.Second, taggerExecutor)
	}

	var graph ports.SkillGraph
	var graphClose func()
	if cfg.Neo4jURI != "" {
		g, err := neo4j.New(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword)
		if err != nil {
			return nil, fmt.Errorf("init skill graph: %w", err)
		}
		graph = g
		graphClose = func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = g.Close(closeCtx)
		}
	}

	extractor := pdf.NewExtractor(logger)
	analyzer := usecase.NewAnalyzer(logger, tagger, usecase.WithReferenceYear(cfg.AnalysisReferenceYear))

	workerMetrics := metrics.NewWorkerMetrics("worker")

	ingestUC := usecase.NewIngestCVUseCase(repo, storage, queue)
	readUC := usecase.NewReadCVUseCase(repo)
	processUC := usecase.NewProcessCVUseCase(
		logger, repo, storage, extractor, analyzer, graph,
		usecase.WithAnalyzedHook(func(cv *domain.CV) {
			workerMetrics.RecordExtraction("worker", string(cv.ExtractionMethod), true)
			workerMetrics.RecordAnalysis("worker", cv.CareerField, cv.OverallScore)
			lag := time.Since(cv.CreatedAt) - time.Duration(cv.ProcessingSeconds*float64(time.Second))
			workerMetrics.ObserveQueueLag("worker", lag)
		}),
	)
	reportUC := usecase.NewReportUseCase(repo, excel.NewExporter())

	return &App{
		Config: cfg,
		Logger: logger,

		Queue:     queue,
		Repo:      repo,
		IngestUC:  ingestUC,
		ReadUC:    readUC,
		ProcessUC: processUC,
		ReportUC:  reportUC,
		Analyzer:  analyzer,

		WorkerMetrics: workerMetrics,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
			if graphClose != nil {
				graphClose()
			}
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
