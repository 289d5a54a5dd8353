package ocr

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/ecotrack-app/carbon-tracker/constants"
)

func newTestServer(t *testing.T, calls *atomic.Int64, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestExtractSuccess(t *testing.T) {
	var calls atomic.Int64
	srv := newTestServer(t, &calls, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/recognize" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}
		var req struct {
			Image    string `json:"image"`
			Language string `json:"language"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Language != "en" {
			t.Errorf("language = %q, want en (default)", req.Language)
		}
		if decoded, err := base64.StdEncoding.DecodeString(req.Image); err != nil || string(decoded) != "fake-image" {
			t.Errorf("image payload = %q err=%v", decoded, err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"text":       "Electricity 100 kWh",
			"confidence": 0.92,
			"page_count": 2,
		})
	})

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"}, nil)
	res, err := c.Extract(context.Background(), []byte("fake-image"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Text != "Electricity 100 kWh" {
		t.Errorf("text = %q", res.Text)
	}
	if res.Confidence != 0.92 {
		t.Errorf("confidence = %v", res.Confidence)
	}
	if res.Pages != 2 {
		t.Errorf("pages = %d", res.Pages)
	}
	if calls.Load() != 1 {
		t.Errorf("provider called %d times, want 1", calls.Load())
	}
}

func TestExtractDefaultsMissingPageCount(t *testing.T) {
	var calls atomic.Int64
	srv := newTestServer(t, &calls, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"text": "hello"})
	})

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	res, err := c.Extract(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Pages != 1 {
		t.Errorf("pages = %d, want 1", res.Pages)
	}
}

func TestExtractEmptyPayloadSkipsNetwork(t *testing.T) {
	var calls atomic.Int64
	srv := newTestServer(t, &calls, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("provider must not be called for an empty payload")
	})

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	_, err := c.Extract(context.Background(), nil)
	if !errors.Is(err, ErrEmptyPayload) {
		t.Fatalf("err = %v, want ErrEmptyPayload", err)
	}
	if calls.Load() != 0 {
		t.Errorf("provider called %d times, want 0", calls.Load())
	}
}

func TestExtractOversizePayloadSkipsNetwork(t *testing.T) {
	var calls atomic.Int64
	srv := newTestServer(t, &calls, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("provider must not be called for an oversize payload")
	})

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	_, err := c.Extract(context.Background(), make([]byte, constants.MaxUploadBytes+1))
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("err = %v, want ErrPayloadTooLarge", err)
	}
	if calls.Load() != 0 {
		t.Errorf("provider called %d times, want 0", calls.Load())
	}
}

func TestExtractAtSizeCeilingIsAccepted(t *testing.T) {
	var calls atomic.Int64
	srv := newTestServer(t, &calls, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"text": "ok", "confidence": 0.5})
	})

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	if _, err := c.Extract(context.Background(), make([]byte, constants.MaxUploadBytes)); err != nil {
		t.Fatalf("payload exactly at the ceiling rejected: %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("provider called %d times, want 1", calls.Load())
	}
}

func TestExtractProviderError(t *testing.T) {
	var calls atomic.Int64
	srv := newTestServer(t, &calls, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"text":  "",
			"error": "unsupported image format",
		})
	})

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	_, err := c.Extract(context.Background(), []byte("img"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := err.Error(); got != "provider error: unsupported image format" {
		t.Errorf("err = %q", got)
	}
}

func TestExtractBadStatus(t *testing.T) {
	var calls atomic.Int64
	srv := newTestServer(t, &calls, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	if _, err := c.Extract(context.Background(), []byte("img")); err == nil {
		t.Fatal("expected an error for a 429 response")
	}
}

func TestExtractInvalidResponseShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing text", `{"confidence": 0.9}`},
		{"confidence out of range", `{"text": "hi", "confidence": 2.5}`},
		{"wrong type", `{"text": 42}`},
		{"not json", `<html>oops</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int64
			srv := newTestServer(t, &calls, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			})

			c := NewClient(Config{BaseURL: srv.URL}, nil)
			if _, err := c.Extract(context.Background(), []byte("img")); err == nil {
				t.Errorf("response %q accepted", tt.body)
			}
		})
	}
}

func TestExtractClampsConfidence(t *testing.T) {
	// The schema already rejects out-of-range confidence, so drive the clamp
	// through edge values the schema permits.
	var calls atomic.Int64
	srv := newTestServer(t, &calls, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"text": "x", "confidence": 1.0})
	})

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	res, err := c.Extract(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Confidence != 1 {
		t.Errorf("confidence = %v, want 1", res.Confidence)
	}
}
