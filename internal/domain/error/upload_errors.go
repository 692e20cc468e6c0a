package error

import "errors"

// Upload domain errors.
var (
	// ErrInvalidBucket is returned for an unknown upload destination.
	ErrInvalidBucket = errors.New("invalid upload bucket")

	// ErrUnsupportedImageType is returned when the sniffed type is not an accepted image.
	ErrUnsupportedImageType = errors.New("unsupported image type")

	// ErrImageTooLarge is returned when the upload exceeds the size limit.
	ErrImageTooLarge = errors.New("image too large")

	// ErrImageDecodeFailed is returned when the bytes do not decode as an image.
	ErrImageDecodeFailed = errors.New("image could not be decoded")

	// ErrImageDimensionsTooLarge is returned when the declared pixel count exceeds the decode limit.
	ErrImageDimensionsTooLarge = errors.New("image dimensions too large")
)

// UploadErrorCode defines error codes for upload errors.
// Format: UPL-XXYYYY where XX is category and YYYY is specific error.
type UploadErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBucket        UploadErrorCode = "UPL-010001"
	ErrCodeUnsupportedImageType UploadErrorCode = "UPL-010002"
	ErrCodeImageTooLarge        UploadErrorCode = "UPL-010003"
	ErrCodeMissingFile          UploadErrorCode = "UPL-010004"
	ErrCodeImageDecodeFailed    UploadErrorCode = "UPL-010005"
	ErrCodeImageDimensions      UploadErrorCode = "UPL-010006"

	// Storage errors (02XXXX)
	ErrCodeStorageFailed UploadErrorCode = "UPL-020001"
)

// UploadError represents an upload error with code and message.
type UploadError struct {
	Code    UploadErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UploadError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UploadError) Unwrap() error {
	return e.Err
}

// NewUploadError creates a new UploadError with the given code and message.
func NewUploadError(code UploadErrorCode, message string, err error) *UploadError {
	return &UploadError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
