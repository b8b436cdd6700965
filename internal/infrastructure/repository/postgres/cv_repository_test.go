package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/puIad/nlp-project/internal/core/domain"
)

func newRepoWithMock(t *testing.T) (*CVRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	return &CVRepository{db: db}, mock, func() { _ = db.Close() }
}

func TestGetByIDReturnsDomainNotFound(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT id, filename, mime_type, storage_path").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrCVNotFound) {
		t.Fatalf("expected ErrCVNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetByIDDecodesAnalysis(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	columns := []string{
		"id", "filename", "mime_type", "storage_path", "full_name", "email", "phone",
		"status", "error_message", "text_length", "extraction_method", "page_count",
		"overall_score", "career_field", "experience_level", "processing_seconds",
		"analysis", "created_at", "updated_at",
	}
	mock.ExpectQuery("SELECT id, filename, mime_type, storage_path").
		WithArgs("cv-1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			"cv-1", "resume.pdf", "application/pdf", "cv-1.pdf", "Jane Doe", "jane@example.com", "",
			string(domain.StatusDone), "", 4200, string(domain.ExtractionPrimary), 2,
			78.5, "Information Technology", string(domain.LevelSenior), 1.25,
			[]byte(`{"overall_score":78.5,"career_field":"Information Technology"}`), now, now,
		))

	cv, err := repo.GetByID(context.Background(), "cv-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if cv.Status != domain.StatusDone || cv.ExperienceLevel != domain.LevelSenior {
		t.Fatalf("unexpected cv: %+v", cv)
	}
	if cv.Analysis == nil || cv.Analysis.OverallScore != 78.5 {
		t.Fatalf("analysis not decoded: %+v", cv.Analysis)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpdateStatusReturnsDomainNotFoundWhenNoRowsAffected(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectExec("UPDATE cvs").
		WithArgs("missing", string(domain.StatusProcessing), "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "missing", domain.StatusProcessing, "")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrCVNotFound) {
		t.Fatalf("expected ErrCVNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSaveAnalysisReturnsDomainNotFoundWhenNoRowsAffected(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectExec("UPDATE cvs").
		WithArgs("missing", "Jane Doe", "jane@example.com", "", 4200, string(domain.ExtractionPrimary),
			2, 78.5, "Information Technology", string(domain.LevelSenior), 1.25,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	analysis := domain.NewAnalysisResult()
	analysis.OverallScore = 78.5
	err := repo.SaveAnalysis(context.Background(), &domain.CV{
		ID:                "missing",
		FullName:          "Jane Doe",
		Email:             "jane@example.com",
		TextLength:        4200,
		ExtractionMethod:  domain.ExtractionPrimary,
		PageCount:         2,
		OverallScore:      78.5,
		CareerField:       "Information Technology",
		ExperienceLevel:   domain.LevelSenior,
		ProcessingSeconds: 1.25,
		Analysis:          &analysis,
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrCVNotFound) {
		t.Fatalf("expected ErrCVNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListAnalyzedFiltersDoneStatus(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	columns := []string{
		"id", "filename", "mime_type", "storage_path", "full_name", "email", "phone",
		"status", "error_message", "text_length", "extraction_method", "page_count",
		"overall_score", "career_field", "experience_level", "processing_seconds",
		"analysis", "created_at", "updated_at",
	}
	mock.ExpectQuery("SELECT id, filename, mime_type, storage_path").
		WithArgs(string(domain.StatusDone)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			"cv-1", "a.pdf", "application/pdf", "cv-1.pdf", "", "", "",
			string(domain.StatusDone), "", 100, string(domain.ExtractionFallback), 1,
			55.0, "General", string(domain.LevelFresher), 0.5,
			nil, now, now,
		))

	cvs, err := repo.ListAnalyzed(context.Background())
	if err != nil {
		t.Fatalf("ListAnalyzed() error = %v", err)
	}
	if len(cvs) != 1 || cvs[0].ID != "cv-1" {
		t.Fatalf("unexpected cvs: %+v", cvs)
	}
	if cvs[0].Analysis != nil {
		t.Fatalf("expected nil analysis for NULL column")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
