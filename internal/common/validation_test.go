package common

import (
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestRequired(t *testing.T) {
	if err := Required("name", "Alice"); err != nil {
		t.Errorf("non-empty string rejected: %v", err)
	}
	if err := Required("name", "   "); err == nil {
		t.Error("whitespace-only string accepted")
	}
	if err := Required("name", nil); err == nil {
		t.Error("nil accepted")
	}
}

func TestMaxLength(t *testing.T) {
	if err := MaxLength("notes", "short", 10); err != nil {
		t.Errorf("short string rejected: %v", err)
	}
	if err := MaxLength("notes", strings.Repeat("x", 11), 10); err == nil {
		t.Error("overlong string accepted")
	}
	// Rune count, not byte count.
	if err := MaxLength("notes", strings.Repeat("³", 10), 10); err != nil {
		t.Errorf("10 multi-byte runes rejected: %v", err)
	}
}

func TestUUIDRule(t *testing.T) {
	if err := UUID("profile_id", "b7a9c7e0-1111-4222-8333-444455556666"); err != nil {
		t.Errorf("valid UUID rejected: %v", err)
	}
	if err := UUID("profile_id", "not-a-uuid"); err == nil {
		t.Error("invalid UUID accepted")
	}
}

func TestValidateAndReturnError(t *testing.T) {
	v := NewValidator().
		Field("name", "", Required).
		Field("notes", "ok", func(name string, value interface{}) *FieldError {
			return MaxLength(name, value, 100)
		})

	err := ValidateAndReturnError(v)
	if err == nil {
		t.Fatal("expected an error")
	}
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.InvalidArgument {
		t.Errorf("err = %v, want InvalidArgument status", err)
	}
	if !strings.Contains(st.Message(), "name") {
		t.Errorf("message %q does not name the failing field", st.Message())
	}

	if err := ValidateAndReturnError(NewValidator()); err != nil {
		t.Errorf("empty validator returned %v", err)
	}
}
