package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/puIad/nlp-project/internal/core/domain"
	"github.com/puIad/nlp-project/internal/core/ports"
)

type ProcessCVUseCase struct {
	logger    *slog.Logger
	repo      ports.CVRepository
	storage   ports.ObjectStorage
	extractor ports.TextExtractor
	analyzer  *Analyzer
	graph     ports.SkillGraph
	now       func() time.Time

	// onAnalyzed fires after a successful analysis, before status=done.
	onAnalyzed func(*domain.CV)
}

type ProcessOption func(*ProcessCVUseCase)

// WithAnalyzedHook registers a callback invoked with the fully populated
// record after each successful analysis. Used for metrics.
func WithAnalyzedHook(fn func(*domain.CV)) ProcessOption {
	return func(uc *ProcessCVUseCase) {
		uc.onAnalyzed = fn
	}
}

func NewProcessCVUseCase(
	logger *slog.Logger,
	repo ports.CVRepository,
	storage ports.ObjectStorage,
	extractor ports.TextExtractor,
	analyzer *Analyzer,
	graph ports.SkillGraph,
	opts ...ProcessOption,
) *ProcessCVUseCase {
	uc := &ProcessCVUseCase{
		logger:    logger,
		repo:      repo,
		storage:   storage,
		extractor: extractor,
		analyzer:  analyzer,
		graph:     graph,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *ProcessCVUseCase) ProcessByID(ctx context.Context, cvID string) error {
	if err := uc.repo.UpdateStatus(ctx, cvID, domain.StatusProcessing, ""); err != nil {
		return fmt.Errorf("set status=processing: %w", err)
	}

	cv, err := uc.processPipeline(ctx, cvID)
	if err != nil {
		if failErr := uc.markFailed(ctx, cvID, err); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return err
	}

	if err := uc.repo.SaveAnalysis(ctx, cv); err != nil {
		if failErr := uc.markFailed(ctx, cvID, err); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return fmt.Errorf("save analysis: %w", err)
	}

	uc.recordGraph(ctx, cv)
	if uc.onAnalyzed != nil {
		uc.onAnalyzed(cv)
	}

	if err := uc.repo.UpdateStatus(ctx, cvID, domain.StatusDone, ""); err != nil {
		return fmt.Errorf("set status=done: %w", err)
	}
	return nil
}

func (uc *ProcessCVUseCase) processPipeline(ctx context.Context, cvID string) (*domain.CV, error) {
	started := uc.now()

	cv, err := uc.repo.GetByID(ctx, cvID)
	if err != nil {
		return nil, fmt.Errorf("fetch cv by id: %w", err)
	}

	data, err := uc.loadFile(ctx, cv.StoragePath)
	if err != nil {
		return nil, err
	}

	extraction := uc.extractor.Extract(ctx, data)
	if !extraction.Success {
		return nil, domain.WrapError(domain.ErrInvalidInput, "extract text",
			fmt.Errorf("extraction failed: %s", strings.Join(extraction.Warnings, "; ")))
	}
	if len(extraction.Warnings) > 0 {
		uc.logger.Warn("extraction degraded",
			"cv_id", cvID,
			"method", string(extraction.Method),
			"warnings", extraction.Warnings,
		)
	}

	analysis := uc.analyzer.Analyze(ctx, extraction.Text)

	cv.TextLength = utf8.RuneCountInString(extraction.Text)
	cv.ExtractionMethod = extraction.Method
	cv.PageCount = extraction.PageCount
	cv.OverallScore = analysis.OverallScore
	cv.CareerField = analysis.CareerField
	cv.ExperienceLevel = analysis.ExperienceLevel
	cv.ProcessingSeconds = uc.now().Sub(started).Seconds()
	cv.Analysis = &analysis

	uc.applyContacts(cv, analysis.Entities)
	return cv, nil
}

func (uc *ProcessCVUseCase) loadFile(ctx context.Context, storageKey string) ([]byte, error) {
	reader, err := uc.storage.Open(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("open stored file: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(io.LimitReader(reader, MaxUploadBytes))
	if err != nil {
		return nil, fmt.Errorf("read stored file: %w", err)
	}
	if len(data) == 0 {
		return nil, domain.WrapError(domain.ErrInvalidInput, "read stored file", errors.New("stored file is empty"))
	}
	return data, nil
}

// applyContacts fills contact columns the uploader left blank from the
// extracted entities. Explicit form values always win.
func (uc *ProcessCVUseCase) applyContacts(cv *domain.CV, entities domain.EntityBag) {
	if cv.FullName == "" && len(entities.Names) > 0 {
		cv.FullName = entities.Names[0]
	}
	if cv.Email == "" && len(entities.Emails) > 0 {
		cv.Email = entities.Emails[0]
	}
	if cv.Phone == "" && len(entities.Phones) > 0 {
		cv.Phone = entities.Phones[0]
	}
}

// recordGraph is best-effort: graph downtime never fails an analysis.
func (uc *ProcessCVUseCase) recordGraph(ctx context.Context, cv *domain.CV) {
	if uc.graph == nil || cv.Analysis == nil {
		return
	}
	if err := uc.graph.RecordAnalysis(ctx, cv.ID, cv.CareerField, cv.Analysis.SkillsFound); err != nil {
		uc.logger.Warn("skill graph record failed", "cv_id", cv.ID, "error", err)
	}
}

func (uc *ProcessCVUseCase) markFailed(ctx context.Context, cvID string, processErr error) error {
	if processErr == nil {
		return nil
	}
	return uc.repo.UpdateStatus(ctx, cvID, domain.StatusFailed, processErr.Error())
}
