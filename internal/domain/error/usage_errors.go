package error

import "errors"

// Usage quota errors.
var (
	// ErrQuotaExceeded is returned when the daily or monthly quota is used up.
	ErrQuotaExceeded = errors.New("usage quota exceeded")

	// ErrQuotaUnavailable is returned when the counters cannot be read.
	ErrQuotaUnavailable = errors.New("usage quota unavailable")
)

// UsageErrorCode defines error codes for quota errors.
// Format: USG-XXYYYY where XX is category and YYYY is specific error.
type UsageErrorCode string

const (
	ErrCodeQuotaExceeded    UsageErrorCode = "USG-010001"
	ErrCodeQuotaUnavailable UsageErrorCode = "USG-010002"
)

// UsageError represents a quota error with code and message.
type UsageError struct {
	Code    UsageErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UsageError) Unwrap() error {
	return e.Err
}

// NewUsageError creates a new UsageError with the given code and message.
func NewUsageError(code UsageErrorCode, message string, err error) *UsageError {
	return &UsageError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
