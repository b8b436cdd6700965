package domain

type ExtractionMethod string

const (
	ExtractionPrimary  ExtractionMethod = "primary"
	ExtractionFallback ExtractionMethod = "fallback"
)

// ExtractionResult reports the outcome of one PDF-to-text conversion.
// Success implies non-blank Text; failure implies empty Text with one
// warning per backend that was attempted.
type ExtractionResult struct {
	Text      string           `json:"-"`
	Method    ExtractionMethod `json:"method"`
	PageCount int              `json:"page_count"`
	Warnings  []string         `json:"warnings"`
	Success   bool             `json:"success"`
}
