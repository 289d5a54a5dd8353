package ocr

import (
	"context"
	"errors"
)

// Result is the provider-recognized text plus its reported quality metadata.
// A failed extraction is represented by a nil Result and a non-nil error.
type Result struct {
	Text       string
	Confidence float32 // 0..1, first-page / document-level value as reported
	Pages      int
}

// TextExtractor is the interface the pipeline depends on.
type TextExtractor interface {
	Extract(ctx context.Context, image []byte) (*Result, error)
}

// Pre-check failures. Neither causes a network call.
var (
	ErrEmptyPayload    = errors.New("image payload is empty")
	ErrPayloadTooLarge = errors.New("image payload exceeds size ceiling")
)
