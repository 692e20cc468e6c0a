package error

import "errors"

// Profile domain errors.
var (
	// ErrProfileNotFound is returned when no profile matches the lookup.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidProfileField is returned when an edited field breaks its bounds.
	ErrInvalidProfileField = errors.New("invalid profile field")

	// ErrInvalidPrivacySettings is returned when the privacy document is malformed.
	ErrInvalidPrivacySettings = errors.New("invalid privacy settings")
)

// ProfileErrorCode defines error codes for profile errors.
// Format: PRF-XXYYYY where XX is category and YYYY is specific error.
type ProfileErrorCode string

const (
	ErrCodeProfileNotFound          ProfileErrorCode = "PRF-010001"
	ErrCodeInvalidDisplayName       ProfileErrorCode = "PRF-010002"
	ErrCodeInvalidBio               ProfileErrorCode = "PRF-010003"
	ErrCodeInvalidLocation          ProfileErrorCode = "PRF-010004"
	ErrCodeInvalidProfileVisibility ProfileErrorCode = "PRF-010005"
	ErrCodeMissingProfileFields     ProfileErrorCode = "PRF-010006"
)

// ProfileError represents a profile error with code and message.
type ProfileError struct {
	Code    ProfileErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProfileError) Unwrap() error {
	return e.Err
}

// NewProfileError creates a new ProfileError with the given code and message.
func NewProfileError(code ProfileErrorCode, message string, err error) *ProfileError {
	return &ProfileError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
