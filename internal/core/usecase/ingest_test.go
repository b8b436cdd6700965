package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/puIad/nlp-project/internal/core/domain"
	"github.com/puIad/nlp-project/internal/core/ports"
)

type ingestRepoFake struct {
	created *domain.CV
	err     error
}

func (f *ingestRepoFake) Create(_ context.Context, cv *domain.CV) error {
	if f.err != nil {
		return f.err
	}
	copyCV := *cv
	f.created = &copyCV
	return nil
}

func (f *ingestRepoFake) GetByID(context.Context, string) (*domain.CV, error) {
	return nil, errors.New("not implemented")
}
func (f *ingestRepoFake) UpdateStatus(context.Context, string, domain.CVStatus, string) error {
	return errors.New("not implemented")
}
func (f *ingestRepoFake) SaveAnalysis(context.Context, *domain.CV) error {
	return errors.New("not implemented")
}
func (f *ingestRepoFake) ListAnalyzed(context.Context) ([]*domain.CV, error) {
	return nil, errors.New("not implemented")
}

type ingestStorageFake struct {
	savedKey   string
	savedBody  string
	removedKey string
	err        error
}

func (f *ingestStorageFake) Save(_ context.Context, key string, data io.Reader) error {
	if f.err != nil {
		return f.err
	}
	raw, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	f.savedKey = key
	f.savedBody = string(raw)
	return nil
}

func (f *ingestStorageFake) Open(context.Context, string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("")), nil
}

func (f *ingestStorageFake) Remove(_ context.Context, key string) error {
	f.removedKey = key
	return nil
}

type ingestQueueFake struct {
	cvID string
	err  error
}

func (f *ingestQueueFake) PublishCVUploaded(_ context.Context, cvID string) error {
	if f.err != nil {
		return f.err
	}
	f.cvID = cvID
	return nil
}

func (f *ingestQueueFake) SubscribeCVUploaded(context.Context, func(context.Context, string) error) error {
	return errors.New("not implemented")
}

func pdfUpload(filename string) (ports.UploadMeta, *bytes.Buffer) {
	body := bytes.NewBufferString("%PDF-1.7 fake body")
	return ports.UploadMeta{
		Filename: filename,
		MimeType: "application/pdf",
		Size:     int64(body.Len()),
	}, body
}

func TestIngestUploadSuccess(t *testing.T) {
	repo := &ingestRepoFake{}
	storage := &ingestStorageFake{}
	queue := &ingestQueueFake{}
	uc := NewIngestCVUseCase(repo, storage, queue)

	meta, body := pdfUpload("my resume.pdf")
	cv, err := uc.Upload(context.Background(), meta, body)
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if cv.ID == "" {
		t.Fatalf("expected cv id")
	}
	if cv.Status != domain.StatusUploaded {
		t.Fatalf("expected status uploaded, got %s", cv.Status)
	}
	if repo.created == nil {
		t.Fatalf("expected repo.Create call")
	}
	if queue.cvID != cv.ID {
		t.Fatalf("expected queued cv id %s, got %s", cv.ID, queue.cvID)
	}
	if !strings.Contains(storage.savedKey, "_my_resume.pdf") {
		t.Fatalf("expected sanitized key suffix, got %s", storage.savedKey)
	}
	if storage.savedBody != "%PDF-1.7 fake body" {
		t.Fatalf("saved body = %q", storage.savedBody)
	}
}

func TestIngestUploadKeepsContactFields(t *testing.T) {
	repo := &ingestRepoFake{}
	uc := NewIngestCVUseCase(repo, &ingestStorageFake{}, &ingestQueueFake{})

	meta, body := pdfUpload("cv.pdf")
	meta.FullName = "Jane Doe"
	meta.Email = "jane@example.com"

	cv, err := uc.Upload(context.Background(), meta, body)
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if cv.FullName != "Jane Doe" || cv.Email != "jane@example.com" {
		t.Fatalf("contact fields lost: %+v", cv)
	}
}

func TestIngestUploadRejectsOversize(t *testing.T) {
	uc := NewIngestCVUseCase(&ingestRepoFake{}, &ingestStorageFake{}, &ingestQueueFake{})

	meta, body := pdfUpload("cv.pdf")
	meta.Size = MaxUploadBytes + 1

	_, err := uc.Upload(context.Background(), meta, body)
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestIngestUploadRejectsExtension(t *testing.T) {
	uc := NewIngestCVUseCase(&ingestRepoFake{}, &ingestStorageFake{}, &ingestQueueFake{})

	meta, body := pdfUpload("cv.docx")
	_, err := uc.Upload(context.Background(), meta, body)
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestIngestUploadRejectsNonPDFBody(t *testing.T) {
	storage := &ingestStorageFake{}
	uc := NewIngestCVUseCase(&ingestRepoFake{}, storage, &ingestQueueFake{})

	meta := ports.UploadMeta{Filename: "cv.pdf", MimeType: "application/pdf", Size: 10}
	_, err := uc.Upload(context.Background(), meta, strings.NewReader("plain text"))
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if storage.savedKey != "" {
		t.Fatalf("nothing should be stored, got key %s", storage.savedKey)
	}
}

func TestIngestUploadQueueErrorCleansUp(t *testing.T) {
	storage := &ingestStorageFake{}
	queue := &ingestQueueFake{err: errors.New("queue down")}
	uc := NewIngestCVUseCase(&ingestRepoFake{}, storage, queue)

	meta, body := pdfUpload("cv.pdf")
	_, err := uc.Upload(context.Background(), meta, body)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "publish upload event") {
		t.Fatalf("expected publish error, got %v", err)
	}
	if storage.removedKey != storage.savedKey {
		t.Fatalf("expected cleanup of %s, removed %s", storage.savedKey, storage.removedKey)
	}
}
