package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/puIad/nlp-project/internal/core/domain"
)

type CVRepository struct {
	db *sql.DB
}

func NewCVRepository(db *sql.DB) *CVRepository {
	return &CVRepository{db: db}
}

func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func (r *CVRepository) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across api/worker startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026083101)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS cvs (
	id TEXT PRIMARY KEY,
	filename TEXT NOT NULL,
	mime_type TEXT NOT NULL,
	storage_path TEXT NOT NULL,
	full_name TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	error_message TEXT NOT NULL DEFAULT '',
	text_length INTEGER NOT NULL DEFAULT 0,
	extraction_method TEXT NOT NULL DEFAULT '',
	page_count INTEGER NOT NULL DEFAULT 0,
	overall_score DOUBLE PRECISION NOT NULL DEFAULT 0,
	career_field TEXT NOT NULL DEFAULT '',
	experience_level TEXT NOT NULL DEFAULT '',
	processing_seconds DOUBLE PRECISION NOT NULL DEFAULT 0,
	analysis JSONB,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_cvs_status ON cvs(status);
CREATE INDEX IF NOT EXISTS idx_cvs_created_at ON cvs(created_at DESC);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

func (r *CVRepository) Create(ctx context.Context, cv *domain.CV) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO cvs (
	id, filename, mime_type, storage_path, status, error_message, created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
`,
		cv.ID, cv.Filename, cv.MimeType, cv.StoragePath, string(cv.Status), cv.Error, cv.CreatedAt, cv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cv: %w", err)
	}
	return nil
}

func (r *CVRepository) GetByID(ctx context.Context, id string) (*domain.CV, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, filename, mime_type, storage_path, full_name, email, phone, status, error_message,
	text_length, extraction_method, page_count, overall_score, career_field, experience_level,
	processing_seconds, analysis, created_at, updated_at
FROM cvs
WHERE id = $1
`, id)

	var cv domain.CV
	var status, method, level string
	var analysisRaw []byte

	err := row.Scan(
		&cv.ID, &cv.Filename, &cv.MimeType, &cv.StoragePath, &cv.FullName, &cv.Email, &cv.Phone,
		&status, &cv.Error, &cv.TextLength, &method, &cv.PageCount, &cv.OverallScore,
		&cv.CareerField, &level, &cv.ProcessingSeconds, &analysisRaw, &cv.CreatedAt, &cv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrCVNotFound, "get cv", err)
		}
		return nil, fmt.Errorf("scan cv: %w", err)
	}

	cv.Status = domain.CVStatus(status)
	cv.ExtractionMethod = domain.ExtractionMethod(method)
	cv.ExperienceLevel = domain.ExperienceLevel(level)

	if len(analysisRaw) > 0 {
		var analysis domain.AnalysisResult
		if err := json.Unmarshal(analysisRaw, &analysis); err != nil {
			return nil, fmt.Errorf("unmarshal analysis: %w", err)
		}
		cv.Analysis = &analysis
	}
	return &cv, nil
}

func (r *CVRepository) UpdateStatus(ctx context.Context, id string, status domain.CVStatus, errMessage string) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE cvs
SET status = $2, error_message = $3, updated_at = $4
WHERE id = $1
`, id, string(status), errMessage, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update cv status: %w", err)
	}
	return notFoundIfNoRows(res, id)
}

func (r *CVRepository) SaveAnalysis(ctx context.Context, cv *domain.CV) error {
	analysisJSON, err := json.Marshal(cv.Analysis)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE cvs
SET full_name = $2, email = $3, phone = $4, text_length = $5, extraction_method = $6,
	page_count = $7, overall_score = $8, career_field = $9, experience_level = $10,
	processing_seconds = $11, analysis = $12, updated_at = $13
WHERE id = $1
`,
		cv.ID, cv.FullName, cv.Email, cv.Phone, cv.TextLength, string(cv.ExtractionMethod),
		cv.PageCount, cv.OverallScore, cv.CareerField, string(cv.ExperienceLevel),
		cv.ProcessingSeconds, analysisJSON, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	return notFoundIfNoRows(res, cv.ID)
}

func (r *CVRepository) ListAnalyzed(ctx context.Context) ([]*domain.CV, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, filename, mime_type, storage_path, full_name, email, phone, status, error_message,
	text_length, extraction_method, page_count, overall_score, career_field, experience_level,
	processing_seconds, analysis, created_at, updated_at
FROM cvs
WHERE status = $1
ORDER BY created_at DESC
`, string(domain.StatusDone))
	if err != nil {
		return nil, fmt.Errorf("list analyzed cvs: %w", err)
	}
	defer rows.Close()

	var cvs []*domain.CV
	for rows.Next() {
		var cv domain.CV
		var status, method, level string
		var analysisRaw []byte

		err := rows.Scan(
			&cv.ID, &cv.Filename, &cv.MimeType, &cv.StoragePath, &cv.FullName, &cv.Email, &cv.Phone,
			&status, &cv.Error, &cv.TextLength, &method, &cv.PageCount, &cv.OverallScore,
			&cv.CareerField, &level, &cv.ProcessingSeconds, &analysisRaw, &cv.CreatedAt, &cv.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan cv row: %w", err)
		}

		cv.Status = domain.CVStatus(status)
		cv.ExtractionMethod = domain.ExtractionMethod(method)
		cv.ExperienceLevel = domain.ExperienceLevel(level)

		if len(analysisRaw) > 0 {
			var analysis domain.AnalysisResult
			if err := json.Unmarshal(analysisRaw, &analysis); err != nil {
				return nil, fmt.Errorf("unmarshal analysis: %w", err)
			}
			cv.Analysis = &analysis
		}
		cvs = append(cvs, &cv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cv rows: %w", err)
	}
	return cvs, nil
}

func notFoundIfNoRows(res sql.Result, id string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.WrapError(domain.ErrCVNotFound, "update cv", fmt.Errorf("no row with id %s", id))
	}
	return nil
}
