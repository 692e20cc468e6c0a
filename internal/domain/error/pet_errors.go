package error

import "errors"

// Pet domain errors.
var (
	// ErrPetNotFound is returned when a pet does not exist or is not the caller's.
	ErrPetNotFound = errors.New("pet not found")

	// ErrInvalidPetName is returned when the name is blank or too long.
	ErrInvalidPetName = errors.New("invalid pet name")

	// ErrInvalidSpecies is returned for an unknown species.
	ErrInvalidSpecies = errors.New("invalid species")

	// ErrInvalidBirthDate is returned when the birth date is malformed or in the future.
	ErrInvalidBirthDate = errors.New("invalid birth date")
)

// PetErrorCode defines error codes for pet errors.
// Format: PET-XXYYYY where XX is category and YYYY is specific error.
type PetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPetName   PetErrorCode = "PET-010001"
	ErrCodeInvalidSpecies   PetErrorCode = "PET-010002"
	ErrCodeInvalidBirthDate PetErrorCode = "PET-010003"
	ErrCodeMissingPetFields PetErrorCode = "PET-010004"

	// Lookup errors (02XXXX)
	ErrCodePetNotFound PetErrorCode = "PET-020001"
)

// PetError represents a pet error with code and message.
type PetError struct {
	Code    PetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PetError) Unwrap() error {
	return e.Err
}

// NewPetError creates a new PetError with the given code and message.
func NewPetError(code PetErrorCode, message string, err error) *PetError {
	return &PetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
