package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppErrorUnwrap(t *testing.T) {
	sentinel := stdErrors.New("quota exceeded")
	err := fmt.Errorf("pipeline: %w", ErrSummaryFailed("openai", sentinel))

	if !stdErrors.Is(err, sentinel) {
		t.Fatalf("expected errors.Is to reach the raw error")
	}

	var appErr AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected errors.As to find AppError")
	}
	if appErr.HTTPCode != http.StatusInternalServerError {
		t.Fatalf("unexpected http code %d", appErr.HTTPCode)
	}
	if appErr.Details["provider"] != "openai" {
		t.Fatalf("unexpected details %v", appErr.Details)
	}
	if got, want := appErr.UserMessage(), "Failed to generate summary: quota exceeded"; got != want {
		t.Fatalf("UserMessage() = %q, want %q", got, want)
	}
}

func TestWithDetailDoesNotShareMap(t *testing.T) {
	base := ErrInvalidArgument("bad")
	a := base.WithDetail("k", "a")
	b := a.WithDetail("k", "b")
	if a.Details["k"] != "a" || b.Details["k"] != "b" {
		t.Fatalf("details leaked between copies: a=%v b=%v", a.Details, b.Details)
	}
}

func TestErrorCodeString(t *testing.T) {
	if ErrorCode_MEETING_NOT_FOUND.String() != "MEETING_NOT_FOUND" {
		t.Fatalf("unexpected name %s", ErrorCode_MEETING_NOT_FOUND.String())
	}
	if ErrorCode(12345).String() != "UNKNOWN" {
		t.Fatalf("unknown codes should render as UNKNOWN")
	}
}
