package error

import "errors"

// Health record domain errors.
var (
	// ErrHealthRecordNotFound is returned when a record does not exist or the caller does not own its pet.
	ErrHealthRecordNotFound = errors.New("health record not found")

	// ErrInvalidRecordType is returned for an unknown record type.
	ErrInvalidRecordType = errors.New("invalid record type")

	// ErrInvalidRecordTitle is returned when the title is blank.
	ErrInvalidRecordTitle = errors.New("invalid record title")

	// ErrInvalidRecordDate is returned when the record date does not parse.
	ErrInvalidRecordDate = errors.New("invalid record date")
)

// HealthRecordErrorCode defines error codes for health record errors.
// Format: HLT-XXYYYY where XX is category and YYYY is specific error.
type HealthRecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRecordType   HealthRecordErrorCode = "HLT-010001"
	ErrCodeInvalidRecordTitle  HealthRecordErrorCode = "HLT-010002"
	ErrCodeInvalidRecordDate   HealthRecordErrorCode = "HLT-010003"
	ErrCodeMissingRecordFields HealthRecordErrorCode = "HLT-010004"

	// Lookup errors (02XXXX)
	ErrCodeHealthRecordNotFound HealthRecordErrorCode = "HLT-020001"
	ErrCodeRecordPetNotFound    HealthRecordErrorCode = "HLT-020002"
)

// HealthRecordError represents a health record error with code and message.
type HealthRecordError struct {
	Code    HealthRecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HealthRecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HealthRecordError) Unwrap() error {
	return e.Err
}

// NewHealthRecordError creates a new HealthRecordError with the given code and message.
func NewHealthRecordError(code HealthRecordErrorCode, message string, err error) *HealthRecordError {
	return &HealthRecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
