package pipeline

import (
	"fmt"

	"github.com/ecotrack-app/carbon-tracker/constants"
)

// ValidationError is malformed caller input: empty upload, inverted date
// range, no usage values. Surfaced synchronously, never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func newValidationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ExtractionError means OCR produced no usable text or the provider call
// failed. Terminal for the scan; the caller may prompt for a re-upload.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ExtractionError) Unwrap() error { return e.Cause }

// ClassificationError means text was recognized but is not a utility bill.
// DetectedType names the alternative when known so the user-facing layer can
// explain the rejection.
type ClassificationError struct {
	Message      string
	DetectedType constants.DocumentType
}

func (e *ClassificationError) Error() string { return e.Message }
