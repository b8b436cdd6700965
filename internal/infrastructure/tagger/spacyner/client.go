package spacyner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/puIad/nlp-project/internal/core/domain"
	"github.com/puIad/nlp-project/internal/infrastructure/resilience"
)

// Client talks to the NER sidecar, a small HTTP service wrapping a
// statistical tagger model. Calls are wrapped in the shared resilience
// executor; unavailability is reported as an error the caller degrades on.
type Client struct {
	baseURL    string
	httpClient *http.Client
	executor   *resilience.Executor
}

func New(baseURL string, timeout time.Duration, executor *resilience.Executor) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		executor:   executor,
	}
}

type taggedEntity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

type tagResponse struct {
	Entities []taggedEntity `json:"entities"`
}

// Tag labels entity spans in text. The sidecar owns the model; this side
// only relays text and maps the response onto domain entities.
func (c *Client) Tag(ctx context.Context, text string) ([]domain.TaggedEntity, error) {
	var response tagResponse

	err := c.executor.Execute(ctx, "ner_tag", func(ctx context.Context) error {
		return c.postJSON(ctx, "/ner", map[string]any{"text": text}, &response)
	}, classifyTaggerError)
	if err != nil {
		return nil, wrapTemporaryIfNeeded("ner_tag", err)
	}

	entities := make([]domain.TaggedEntity, 0, len(response.Entities))
	for _, entity := range response.Entities {
		entities = append(entities, domain.TaggedEntity{Text: entity.Text, Label: entity.Label})
	}
	return entities, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal tag request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create tag request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tagger request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return statusError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode tag response: %w", err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return &HTTPStatusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       strings.TrimSpace(string(body)),
	}
}
