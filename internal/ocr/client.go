package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/ecotrack-app/carbon-tracker/constants"
)

// Config for the external text-recognition provider.
type Config struct {
	BaseURL  string
	APIKey   string
	Language string        // default "en"
	Timeout  time.Duration // per-request; default 30s
}

// Client implements TextExtractor against an HTTP recognition provider.
// It never retries: retry policy, if any, belongs to the caller. A circuit
// breaker shields the provider when it is failing hard.
type Client struct {
	cfg     Config
	hc      *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
	log     *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	c := &Client{
		cfg: cfg,
		hc:  &http.Client{Timeout: cfg.Timeout},
		log: logger,
	}
	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:    "ocr-provider",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 10 && float64(counts.TotalFailures)/float64(counts.Requests) >= 0.5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("ocr.breaker.state_change", "name", name, "from", from.String(), "to", to.String())
		},
	})
	return c
}

// Extract submits image bytes to the provider and maps the response into a
// Result. Empty and over-ceiling payloads fail before any network I/O.
func (c *Client) Extract(ctx context.Context, image []byte) (*Result, error) {
	if len(image) == 0 {
		return nil, ErrEmptyPayload
	}
	if len(image) > constants.MaxUploadBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(image))
	}

	start := time.Now()
	body := map[string]any{
		"image":    base64.StdEncoding.EncodeToString(image),
		"language": c.cfg.Language,
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/v1/recognize"
	raw, err := c.breaker.Execute(func() ([]byte, error) {
		return c.post(ctx, endpoint, body)
	})
	if err != nil {
		c.log.Error("ocr.extract.http_error",
			"error", err,
			"image_bytes", len(image),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	if err := ValidateJSONAgainstSchema(BuildResponseJSONSchema(), raw); err != nil {
		c.log.Error("ocr.extract.schema_validation_failed", "error", err, "raw_bytes", len(raw))
		return nil, fmt.Errorf("provider response invalid: %w", err)
	}

	var pr struct {
		Text       string  `json:"text"`
		Confidence float32 `json:"confidence"`
		PageCount  int     `json:"page_count"`
		Error      string  `json:"error"`
	}
	if err := json.Unmarshal(raw, &pr); err != nil {
		return nil, fmt.Errorf("decode provider response: %w", err)
	}
	if pr.Error != "" {
		c.log.Error("ocr.extract.provider_error", "provider_error", pr.Error)
		return nil, fmt.Errorf("provider error: %s", pr.Error)
	}

	if pr.PageCount <= 0 {
		pr.PageCount = 1
	}
	if pr.Confidence < 0 {
		pr.Confidence = 0
	}
	if pr.Confidence > 1 {
		pr.Confidence = 1
	}

	c.log.Debug("ocr.extract.ok",
		"text_bytes", len(pr.Text),
		"pages", pr.PageCount,
		"confidence", pr.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &Result{Text: pr.Text, Confidence: pr.Confidence, Pages: pr.PageCount}, nil
}

func (c *Client) post(ctx context.Context, endpoint string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http post: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("provider status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return raw, nil
}
