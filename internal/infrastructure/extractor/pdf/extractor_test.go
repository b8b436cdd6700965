package pdf

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/puIad/nlp-project/internal/core/domain"
)

type fakeBackend struct {
	id    string
	text  string
	pages int
	err   error
	boom  bool
}

func (f fakeBackend) name() string { return f.id }

func (f fakeBackend) extract([]byte) (string, int, error) {
	if f.boom {
		panic("malformed xref table")
	}
	return f.text, f.pages, f.err
}

func newTestExtractor(primary, fallback backend) *Extractor {
	return &Extractor{
		logger:   slog.New(slog.DiscardHandler),
		backends: []backend{primary, fallback},
	}
}

var longText = strings.Repeat("resume content line with plenty of characters\n", 5)

func TestExtractPrimarySucceeds(t *testing.T) {
	e := newTestExtractor(
		fakeBackend{id: "rows", text: longText, pages: 2},
		fakeBackend{id: "plain", err: errors.New("should not run")},
	)

	result := e.Extract(context.Background(), []byte("%PDF-1.7"))

	if !result.Success {
		t.Fatalf("success = false, warnings: %v", result.Warnings)
	}
	if result.Method != domain.ExtractionPrimary {
		t.Errorf("method = %q, want primary", result.Method)
	}
	if result.PageCount != 2 {
		t.Errorf("pages = %d, want 2", result.PageCount)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", result.Warnings)
	}
}

func TestExtractFallsBackOnError(t *testing.T) {
	e := newTestExtractor(
		fakeBackend{id: "rows", err: errors.New("bad object stream")},
		fakeBackend{id: "plain", text: longText, pages: 3},
	)

	result := e.Extract(context.Background(), nil)

	if !result.Success {
		t.Fatalf("success = false, warnings: %v", result.Warnings)
	}
	if result.Method != domain.ExtractionFallback {
		t.Errorf("method = %q, want fallback", result.Method)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "rows:") {
		t.Errorf("warnings = %v, want one rows warning", result.Warnings)
	}
}

func TestExtractFallsBackOnShortText(t *testing.T) {
	e := newTestExtractor(
		fakeBackend{id: "rows", text: "too little", pages: 1},
		fakeBackend{id: "plain", text: longText, pages: 1},
	)

	result := e.Extract(context.Background(), nil)

	if !result.Success || result.Method != domain.ExtractionFallback {
		t.Fatalf("result = %+v, want fallback success", result)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "insufficient text") {
		t.Errorf("warnings = %v", result.Warnings)
	}
}

func TestExtractBothFail(t *testing.T) {
	e := newTestExtractor(
		fakeBackend{id: "rows", err: errors.New("first")},
		fakeBackend{id: "plain", err: errors.New("second")},
	)

	result := e.Extract(context.Background(), nil)

	if result.Success {
		t.Fatal("success = true, want failure")
	}
	if result.Text != "" {
		t.Errorf("text = %q, want empty", result.Text)
	}
	if len(result.Warnings) != 2 {
		t.Errorf("warnings = %v, want two entries", result.Warnings)
	}
}

func TestExtractRecoversFromPanic(t *testing.T) {
	e := newTestExtractor(
		fakeBackend{id: "rows", boom: true},
		fakeBackend{id: "plain", text: longText, pages: 1},
	)

	result := e.Extract(context.Background(), nil)

	if !result.Success || result.Method != domain.ExtractionFallback {
		t.Fatalf("result = %+v, want fallback after panic", result)
	}
	if !strings.Contains(result.Warnings[0], "parser panic") {
		t.Errorf("warnings = %v, want panic warning", result.Warnings)
	}
}

func TestExtractRealParserOnGarbage(t *testing.T) {
	e := NewExtractor(slog.New(slog.DiscardHandler))

	result := e.Extract(context.Background(), []byte("this is not a pdf at all"))

	if result.Success {
		t.Fatal("garbage input must not extract successfully")
	}
	if len(result.Warnings) != 2 {
		t.Errorf("warnings = %v, want one per backend", result.Warnings)
	}
}
