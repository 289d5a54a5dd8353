package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ecotrack-app/carbon-tracker/constants"
	"github.com/ecotrack-app/carbon-tracker/internal/common"
	"github.com/ecotrack-app/carbon-tracker/internal/pipeline"
)

func TestMapPipelineError(t *testing.T) {
	s := &BillService{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{
			name: "validation",
			err:  &pipeline.ValidationError{Message: "uploaded file is empty"},
			code: codes.InvalidArgument,
		},
		{
			name: "extraction",
			err:  &pipeline.ExtractionError{Message: "OCR produced no usable text"},
			code: codes.FailedPrecondition,
		},
		{
			name: "classification",
			err: &pipeline.ClassificationError{
				Message:      "document looks like a flight ticket, not a utility bill",
				DetectedType: constants.DocTypeFlightTicket,
			},
			code: codes.FailedPrecondition,
		},
		{
			name: "unknown profile",
			err:  common.ErrNotFound,
			code: codes.NotFound,
		},
		{
			name: "cancelled",
			err:  context.Canceled,
			code: codes.Canceled,
		},
		{
			name: "anything else",
			err:  errors.New("connection reset"),
			code: codes.Internal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.mapPipelineError(tt.err)
			st, ok := status.FromError(got)
			if !ok {
				t.Fatalf("mapped error %v is not a status", got)
			}
			if st.Code() != tt.code {
				t.Errorf("code = %s, want %s", st.Code(), tt.code)
			}
		})
	}
}

func TestParseProfileID(t *testing.T) {
	if _, err := parseProfileID(""); err == nil {
		t.Error("empty profile_id accepted")
	}
	if _, err := parseProfileID("nope"); err == nil {
		t.Error("malformed profile_id accepted")
	}
	if _, err := parseProfileID("b7a9c7e0-1111-4222-8333-444455556666"); err != nil {
		t.Errorf("valid profile_id rejected: %v", err)
	}
}

func TestParseOptionalYMD(t *testing.T) {
	if d, err := parseOptionalYMD("from_date", ""); err != nil || d != nil {
		t.Errorf("blank date: d=%v err=%v", d, err)
	}
	d, err := parseOptionalYMD("from_date", "2024-03-01")
	if err != nil || d == nil {
		t.Fatalf("valid date: d=%v err=%v", d, err)
	}
	if d.Year() != 2024 || d.Month() != 3 || d.Day() != 1 {
		t.Errorf("parsed %v", d)
	}
	if _, err := parseOptionalYMD("from_date", "01/03/2024"); err == nil {
		t.Error("wrong layout accepted")
	}
}
