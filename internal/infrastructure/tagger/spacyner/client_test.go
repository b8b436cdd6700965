package spacyner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/puIad/nlp-project/internal/core/domain"
	"github.com/puIad/nlp-project/internal/infrastructure/resilience"
)

func testExecutor() *resilience.Executor {
	cfg := resilience.DefaultConfig()
	cfg.RetryMaxAttempts = 1
	cfg.BreakerEnabled = false
	return resilience.NewExecutor(cfg)
}

func TestTagParsesEntities(t *testing.T) {
	var capturedText string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ner" {
			http.NotFound(w, r)
			return
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		capturedText, _ = payload["text"].(string)
		_, _ = w.Write([]byte(`{"entities":[{"text":"Jane Doe","label":"PERSON"},{"text":"Acme","label":"ORG"}]}`))
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second, testExecutor())
	entities, err := client.Tag(context.Background(), "Jane Doe worked at Acme")
	if err != nil {
		t.Fatalf("Tag() error = %v", err)
	}
	if capturedText != "Jane Doe worked at Acme" {
		t.Fatalf("unexpected request text: %q", capturedText)
	}
	if len(entities) != 2 || entities[0] != (domain.TaggedEntity{Text: "Jane Doe", Label: "PERSON"}) {
		t.Fatalf("unexpected entities: %+v", entities)
	}
}

func TestTagRetryableStatusIsTemporary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second, testExecutor())
	_, err := client.Tag(context.Background(), "text")
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.ErrTemporary) {
		t.Fatalf("expected temporary error, got %v", err)
	}
	if !strings.Contains(err.Error(), "model loading") {
		t.Fatalf("expected response body in error, got %v", err)
	}
}

func TestTagBadRequestIsNotTemporary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "text too large", http.StatusBadRequest)
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second, testExecutor())
	_, err := client.Tag(context.Background(), "text")
	if err == nil {
		t.Fatal("expected error")
	}
	if domain.IsKind(err, domain.ErrTemporary) {
		t.Fatalf("4xx must not be temporary: %v", err)
	}
}
