package ports

import (
	"context"
	"io"

	"github.com/puIad/nlp-project/internal/core/domain"
)

// UploadMeta carries the transport-level attributes of one CV submission.
type UploadMeta struct {
	Filename string
	MimeType string
	Size     int64
	FullName string
	Email    string
	Phone    string
}

// CVIngestor is the inbound contract for CV upload orchestration.
type CVIngestor interface {
	Upload(ctx context.Context, meta UploadMeta, body io.Reader) (*domain.CV, error)
}

// CVReader is the inbound read model for CV records.
type CVReader interface {
	GetByID(ctx context.Context, id string) (*domain.CV, error)
}

// CVProcessor is the inbound contract for asynchronous CV analysis.
type CVProcessor interface {
	ProcessByID(ctx context.Context, cvID string) error
}

// ReportService assembles and exports the admin aggregate report.
type ReportService interface {
	Report(ctx context.Context) (*domain.Report, error)
	ExportXLSX(ctx context.Context) ([]byte, error)
}
