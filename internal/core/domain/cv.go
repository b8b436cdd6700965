package domain

import "time"

type CVStatus string

const (
	StatusUploaded   CVStatus = "uploaded"
	StatusProcessing CVStatus = "processing"
	StatusDone       CVStatus = "done"
	StatusFailed     CVStatus = "failed"
)

// CV is the persistent record of one submitted résumé: the stored file,
// applicant contact details, processing lifecycle, and the analysis outcome
// once the worker has run.
type CV struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	MimeType    string `json:"mime_type"`
	StoragePath string `json:"storage_path"`

	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`

	Status CVStatus `json:"status"`
	Error  string   `json:"error,omitempty"`

	TextLength        int              `json:"text_length,omitempty"`
	ExtractionMethod  ExtractionMethod `json:"extraction_method,omitempty"`
	PageCount         int              `json:"page_count,omitempty"`
	OverallScore      float64          `json:"overall_score,omitempty"`
	CareerField       string           `json:"career_field,omitempty"`
	ExperienceLevel   ExperienceLevel  `json:"experience_level,omitempty"`
	ProcessingSeconds float64          `json:"processing_seconds,omitempty"`

	Analysis *AnalysisResult `json:"analysis,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
