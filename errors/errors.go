package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified SDK error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Status is the observed HTTP status code, 0 when not applicable.
	Status int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// CodeOf returns the error code of err, or ErrCodeInternal when err is
// not an *AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// IsRetryable reports whether err represents a retryable failure.
func IsRetryable(err error) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Retryable
	}
	return false
}

// --- Common Error Constructors ---

// ConnectionFailed creates an AppError for a failed connection to the backend.
func ConnectionFailed(target string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeConnectionFailed, Message: fmt.Sprintf("unable to connect to %s", target),
		Retryable: true, Cause: cause,
		Details: map[string]any{"target": target},
	}
}

// Timeout creates an AppError for an operation that timed out.
func Timeout(operation string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: fmt.Sprintf("%s took too long", operation),
		Retryable: true, Cause: cause,
		Details: map[string]any{"operation": operation},
	}
}

// StreamClosed creates an AppError for an event stream that ended.
func StreamClosed(cause error) *AppError {
	return &AppError{
		Code: ErrCodeStreamClosed, Message: "event stream closed",
		Retryable: true, Cause: cause,
	}
}

// DecodeFailed creates an AppError for a malformed event payload.
func DecodeFailed(eventType string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeDecodeFailed, Message: fmt.Sprintf("malformed payload for event %q", eventType),
		Retryable: false, Cause: cause,
		Details: map[string]any{"event_type": eventType},
	}
}

// UnknownEvent creates an AppError for an unregistered event type.
func UnknownEvent(eventType string) *AppError {
	return &AppError{
		Code: ErrCodeUnknownEvent, Message: fmt.Sprintf("unknown event type %q", eventType),
		Retryable: false,
		Details:   map[string]any{"event_type": eventType},
	}
}

// NotFound creates an AppError for a resource that was not found.
func NotFound(resource, id string) *AppError {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("the requested %s was not found", resource),
		Retryable: false, Status: 404, Details: details,
	}
}

// InvalidInput creates an AppError for rejected input.
func InvalidInput(reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: reason,
		Retryable: false, Status: 400,
	}
}

// InvalidConfig creates an AppError for SDK misconfiguration.
// Configuration errors are fatal at startup, never swallowed at runtime.
func InvalidConfig(reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidConfig, Message: reason,
		Retryable: false,
	}
}

// Internal creates an AppError for an unexpected backend failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "an unexpected error occurred",
		Retryable: false, Cause: cause,
	}
}
