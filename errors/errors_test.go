package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppErrorMessage(t *testing.T) {
	err := New(ErrCodeConnectionFailed, "backend unreachable")
	if !strings.Contains(err.Error(), "CONNECTION_FAILED") {
		t.Errorf("Error() = %q, want code included", err.Error())
	}
	if !err.Retryable {
		t.Error("CONNECTION_FAILED should be retryable")
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := ConnectionFailed("api.spellforge.gg", cause)
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Error() = %q, want cause included", err.Error())
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"app error", DecodeFailed("ping", fmt.Errorf("bad json")), ErrCodeDecodeFailed},
		{"wrapped app error", fmt.Errorf("while reading: %w", UnknownEvent("mystery")), ErrCodeUnknownEvent},
		{"plain error", fmt.Errorf("boom"), ErrCodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"stream closed", StreamClosed(nil), true},
		{"timeout", Timeout("fetch queue", nil), true},
		{"decode failure", DecodeFailed("queue.update", nil), false},
		{"invalid config", InvalidConfig("missing url"), false},
		{"plain error", fmt.Errorf("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithDetail(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad prompt").WithDetail("field", "prompt")
	if err.Details["field"] != "prompt" {
		t.Errorf("Details[field] = %v, want prompt", err.Details["field"])
	}
}
