package error

import "errors"

// Pet service directory errors.
var (
	// ErrServiceNotFound is returned when a listed service does not exist.
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidServiceType is returned when the type filter is unknown.
	ErrInvalidServiceType = errors.New("invalid service type")

	// ErrInvalidRating is returned when a rating falls outside 1 to 5.
	ErrInvalidRating = errors.New("invalid rating")

	// ErrReviewTooLong is returned when the review text exceeds its limit.
	ErrReviewTooLong = errors.New("review is too long")

	// ErrAlreadyReviewed is returned when the user already reviewed the service.
	ErrAlreadyReviewed = errors.New("service already reviewed by this user")
)

// ServiceErrorCode defines error codes for directory errors.
// Format: SVC-XXYYYY where XX is category and YYYY is specific error.
type ServiceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidServiceType  ServiceErrorCode = "SVC-010001"
	ErrCodeInvalidRating       ServiceErrorCode = "SVC-010002"
	ErrCodeReviewTooLong       ServiceErrorCode = "SVC-010003"
	ErrCodeMissingReviewFields ServiceErrorCode = "SVC-010004"

	// Lookup and conflict errors (02XXXX)
	ErrCodeServiceNotFound ServiceErrorCode = "SVC-020001"
	ErrCodeAlreadyReviewed ServiceErrorCode = "SVC-020002"
)

// ServiceError represents a directory error with code and message.
type ServiceError struct {
	Code    ServiceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError with the given code and message.
func NewServiceError(code ServiceErrorCode, message string, err error) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
