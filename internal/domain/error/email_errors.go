package error

import "errors"

// Email domain errors.
var (
	// ErrEmailQueueFailed is returned when a transactional email cannot be queued.
	ErrEmailQueueFailed = errors.New("failed to queue email")

	// ErrUnknownEmailTemplate is returned for a template other than welcome or password_reset.
	ErrUnknownEmailTemplate = errors.New("unknown email template")

	// ErrMissingRecipient is returned when a job has no recipient address.
	ErrMissingRecipient = errors.New("email recipient is required")

	// ErrMissingResetLink is returned when a password reset email carries no link.
	ErrMissingResetLink = errors.New("password reset email requires a reset link")

	// ErrPermanentEmailFailure is returned when the provider rejects a message for good.
	ErrPermanentEmailFailure = errors.New("permanent email failure")

	// ErrTemporaryEmailFailure is returned when delivery may succeed on retry.
	ErrTemporaryEmailFailure = errors.New("temporary email failure")
)

// EmailErrorCode defines error codes for email errors.
// Format: EMAIL-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Queue errors (01XXXX)
	ErrCodeEmailQueueFailed EmailErrorCode = "EMAIL-010001"
	ErrCodeUnknownTemplate  EmailErrorCode = "EMAIL-010002"
	ErrCodeMissingRecipient EmailErrorCode = "EMAIL-010003"
	ErrCodeMissingResetLink EmailErrorCode = "EMAIL-010004"

	// Delivery errors (02XXXX)
	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-020001"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-020002"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsPermanentEmailFailure reports whether retrying err is pointless: the
// provider rejected the message, or the job itself can never render.
func IsPermanentEmailFailure(err error) bool {
	var emailErr *EmailError
	if !errors.As(err, &emailErr) {
		return false
	}
	switch emailErr.Code {
	case ErrCodePermanentEmailFailure,
		ErrCodeUnknownTemplate,
		ErrCodeMissingRecipient,
		ErrCodeMissingResetLink:
		return true
	}
	return false
}
