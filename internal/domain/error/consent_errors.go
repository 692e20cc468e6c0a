package error

import "errors"

// Consent domain errors.
var (
	// ErrInvalidConsentType is returned for an unknown consent type.
	ErrInvalidConsentType = errors.New("invalid consent type")

	// ErrRequiredConsentMissing is returned when data processing consent is not granted.
	ErrRequiredConsentMissing = errors.New("data processing consent is required")

	// ErrRequiredConsentRevoke is returned when revoking a required consent.
	ErrRequiredConsentRevoke = errors.New("required consent cannot be revoked")
)

// ConsentErrorCode defines error codes for consent errors.
// Format: CNS-XXYYYY where XX is category and YYYY is specific error.
type ConsentErrorCode string

const (
	ErrCodeInvalidConsentType     ConsentErrorCode = "CNS-010001"
	ErrCodeRequiredConsentMissing ConsentErrorCode = "CNS-010002"
	ErrCodeRequiredConsentRevoke  ConsentErrorCode = "CNS-010003"
	ErrCodeMissingConsentFields   ConsentErrorCode = "CNS-010004"
)

// ConsentError represents a consent error with code and message.
type ConsentError struct {
	Code    ConsentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConsentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ConsentError) Unwrap() error {
	return e.Err
}

// NewConsentError creates a new ConsentError with the given code and message.
func NewConsentError(code ConsentErrorCode, message string, err error) *ConsentError {
	return &ConsentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
