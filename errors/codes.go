package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Connection/transport errors (retryable).
const (
	// ErrCodeConnectionFailed indicates the backend could not be reached.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeTimeout indicates the request or dial timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeStreamClosed indicates the event stream ended unexpectedly.
	ErrCodeStreamClosed ErrorCode = "STREAM_CLOSED"
	// ErrCodeServiceUnavailable indicates the backend is temporarily down.
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// ErrCodeRateLimited indicates the client is rate limited.
	ErrCodeRateLimited ErrorCode = "RATE_LIMITED"
)

// Stream processing errors (never retryable, never fatal to the stream).
const (
	// ErrCodeDecodeFailed indicates a malformed payload for a known event type.
	ErrCodeDecodeFailed ErrorCode = "DECODE_FAILED"
	// ErrCodeUnknownEvent indicates an event type absent from the registry.
	ErrCodeUnknownEvent ErrorCode = "UNKNOWN_EVENT"
)

// Request/configuration errors.
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInvalidInput indicates the input was rejected.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidConfig indicates the SDK was misconfigured. Fatal at startup.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeInternal indicates an unexpected backend error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeConnectionFailed:   true,
	ErrCodeTimeout:            true,
	ErrCodeStreamClosed:       true,
	ErrCodeServiceUnavailable: true,
	ErrCodeRateLimited:        true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
