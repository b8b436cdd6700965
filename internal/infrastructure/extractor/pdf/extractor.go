package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/puIad/nlp-project/internal/core/domain"
)

// minExtractedChars is the floor below which a backend's output counts as a
// failed extraction and the next backend is tried.
const minExtractedChars = 50

// backend is one PDF-to-text strategy. Implementations may be called with
// arbitrary attacker-supplied bytes and must not panic past extractSafely.
type backend interface {
	name() string
	extract(data []byte) (string, int, error)
}

// Extractor converts PDF bytes to normalized text. The layout-aware backend
// runs first; the plain-text backend is the fallback. Every failure mode is
// reported through the result, never as an error or panic.
type Extractor struct {
	logger   *slog.Logger
	backends []backend
}

func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{
		logger:   logger,
		backends: []backend{rowBackend{}, plainBackend{}},
	}
}

func (e *Extractor) Extract(ctx context.Context, data []byte) domain.ExtractionResult {
	result := domain.ExtractionResult{Warnings: []string{}}

	for i, b := range e.backends {
		if err := ctx.Err(); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", b.name(), err))
			return result
		}

		text, pages, err := extractSafely(b, data)
		if err == nil && len(strings.TrimSpace(text)) <= minExtractedChars {
			err = fmt.Errorf("insufficient text extracted")
		}
		if err != nil {
			e.logger.Warn("pdf extraction backend failed", "backend", b.name(), "error", err)
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", b.name(), err))
			continue
		}

		result.Text = Normalize(text)
		result.PageCount = pages
		result.Success = true
		if i == 0 {
			result.Method = domain.ExtractionPrimary
		} else {
			result.Method = domain.ExtractionFallback
		}
		e.logger.Info("pdf text extracted", "backend", b.name(), "pages", pages, "chars", len(result.Text))
		return result
	}

	return result
}

// extractSafely shields callers from parser panics on malformed documents.
func extractSafely(b backend, data []byte) (text string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			pages = 0
			err = fmt.Errorf("parser panic: %v", r)
		}
	}()
	return b.extract(data)
}

// rowBackend reads text row by row, preserving the visual line structure.
// Headers and bullet lists survive this path, which the section detector
// depends on.
type rowBackend struct{}

func (rowBackend) name() string { return "rows" }

func (rowBackend) extract(data []byte) (string, int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}

	pageCount := reader.NumPage()
	var pageTexts []string
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", 0, fmt.Errorf("page %d: %w", i, err)
		}
		var lines []string
		for _, row := range rows {
			var sb strings.Builder
			for _, word := range row.Content {
				sb.WriteString(word.S)
			}
			if line := strings.TrimSpace(sb.String()); line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			pageTexts = append(pageTexts, strings.Join(lines, "\n"))
		}
	}

	return strings.Join(pageTexts, "\n\n"), pageCount, nil
}

// plainBackend streams the document's raw text content without layout
// reconstruction. Less faithful, but succeeds on documents the row reader
// cannot handle.
type plainBackend struct{}

func (plainBackend) name() string { return "plain" }

func (plainBackend) extract(data []byte) (string, int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}

	stream, err := reader.GetPlainText()
	if err != nil {
		return "", 0, fmt.Errorf("plain text stream: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, stream); err != nil {
		return "", 0, fmt.Errorf("read plain text: %w", err)
	}

	return buf.String(), reader.NumPage(), nil
}
