package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/puIad/nlp-project/internal/core/domain"
	"github.com/puIad/nlp-project/internal/core/ports"
)

// MaxUploadBytes caps one CV upload at 16 MiB.
const MaxUploadBytes = 16 << 20

var pdfMagic = []byte("%PDF")

type IngestCVUseCase struct {
	repo    ports.CVRepository
	storage ports.ObjectStorage
	queue   ports.MessageQueue
}

func NewIngestCVUseCase(
	repo ports.CVRepository,
	storage ports.ObjectStorage,
	queue ports.MessageQueue,
) *IngestCVUseCase {
	return &IngestCVUseCase{
		repo:    repo,
		storage: storage,
		queue:   queue,
	}
}

func (uc *IngestCVUseCase) Upload(ctx context.Context, meta ports.UploadMeta, body io.Reader) (*domain.CV, error) {
	if err := validateUpload(meta); err != nil {
		return nil, err
	}

	head := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(body, head); err != nil || !bytes.Equal(head, pdfMagic) {
		return nil, domain.WrapError(domain.ErrInvalidInput, "validate upload", errors.New("file is not a PDF"))
	}
	body = io.MultiReader(bytes.NewReader(head), io.LimitReader(body, MaxUploadBytes-int64(len(head))))

	id := uuid.NewString()
	storageKey := fmt.Sprintf("%s_%s", id, sanitizeFilename(meta.Filename))
	now := time.Now().UTC()

	if err := uc.storage.Save(ctx, storageKey, body); err != nil {
		return nil, fmt.Errorf("save to object storage: %w", err)
	}

	cv := &domain.CV{
		ID:          id,
		Filename:    meta.Filename,
		MimeType:    meta.MimeType,
		StoragePath: storageKey,
		FullName:    meta.FullName,
		Email:       meta.Email,
		Phone:       meta.Phone,
		Status:      domain.StatusUploaded,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.repo.Create(ctx, cv); err != nil {
		uc.discard(ctx, storageKey)
		return nil, fmt.Errorf("create cv record: %w", err)
	}

	if err := uc.queue.PublishCVUploaded(ctx, cv.ID); err != nil {
		uc.discard(ctx, storageKey)
		return nil, fmt.Errorf("publish upload event: %w", err)
	}

	return cv, nil
}

func validateUpload(meta ports.UploadMeta) error {
	if meta.Size > MaxUploadBytes {
		return domain.WrapError(domain.ErrInvalidInput, "validate upload",
			fmt.Errorf("file size %d exceeds limit %d", meta.Size, MaxUploadBytes))
	}
	if !strings.EqualFold(filepath.Ext(meta.Filename), ".pdf") {
		return domain.WrapError(domain.ErrInvalidInput, "validate upload",
			fmt.Errorf("unsupported file extension %q", filepath.Ext(meta.Filename)))
	}
	return nil
}

// discard is best-effort cleanup after a failed ingest; the original error
// matters more than an orphaned file.
func (uc *IngestCVUseCase) discard(ctx context.Context, storageKey string) {
	_ = uc.storage.Remove(ctx, storageKey)
}

func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	base = strings.ReplaceAll(base, " ", "_")
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" {
		return "cv.pdf"
	}
	return base
}
