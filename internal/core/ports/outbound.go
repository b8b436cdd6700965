package ports

import (
	"context"
	"io"

	"github.com/puIad/nlp-project/internal/core/domain"
)

// CVRepository persists and reads CV records and their analysis results.
type CVRepository interface {
	Create(ctx context.Context, cv *domain.CV) error
	GetByID(ctx context.Context, id string) (*domain.CV, error)
	UpdateStatus(ctx context.Context, id string, status domain.CVStatus, errMessage string) error
	SaveAnalysis(ctx context.Context, cv *domain.CV) error
	ListAnalyzed(ctx context.Context) ([]*domain.CV, error)
}

// ObjectStorage stores uploaded source documents.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Remove(ctx context.Context, key string) error
}

// MessageQueue publishes/consumes upload events.
type MessageQueue interface {
	PublishCVUploaded(ctx context.Context, cvID string) error
	SubscribeCVUploaded(ctx context.Context, handler func(context.Context, string) error) error
}

// TextExtractor converts raw document bytes into normalized text. The call
// is total: every failure mode is encoded in the result, never panicked or
// returned as an error.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) domain.ExtractionResult
}

// EntityTagger is the optional statistical NER collaborator. A nil tagger is
// a supported configuration; callers degrade to empty entity sets.
type EntityTagger interface {
	Tag(ctx context.Context, text string) ([]domain.TaggedEntity, error)
}

// SkillGraph records skill/field co-occurrence per analyzed CV. Optional in
// the same way the tagger is: a nil graph disables recording.
type SkillGraph interface {
	RecordAnalysis(ctx context.Context, cvID, careerField string, skills []string) error
}

// ReportExporter renders the aggregate report to a downloadable workbook.
type ReportExporter interface {
	Export(report *domain.Report) ([]byte, error)
}
