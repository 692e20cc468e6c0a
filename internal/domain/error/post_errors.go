package error

import "errors"

// Post domain errors.
var (
	// ErrPostNotFound is returned when a post does not exist or is hidden from the caller.
	ErrPostNotFound = errors.New("post not found")

	// ErrInvalidPostContent is returned when the content is blank or too long.
	ErrInvalidPostContent = errors.New("invalid post content")

	// ErrInvalidPostVisibility is returned for an unknown visibility.
	ErrInvalidPostVisibility = errors.New("invalid post visibility")

	// ErrTaggedPetNotOwned is returned when a tagged pet belongs to someone else.
	ErrTaggedPetNotOwned = errors.New("tagged pet does not belong to author")

	// ErrNotPostAuthor is returned when someone other than the author changes a post.
	ErrNotPostAuthor = errors.New("only the author can change this post")

	// ErrInvalidCommentContent is returned when a comment is blank or too long.
	ErrInvalidCommentContent = errors.New("invalid comment content")
)

// PostErrorCode defines error codes for post errors.
// Format: PST-XXYYYY where XX is category and YYYY is specific error.
type PostErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPostContent    PostErrorCode = "PST-010001"
	ErrCodeInvalidPostVisibility PostErrorCode = "PST-010002"
	ErrCodeTaggedPetNotOwned     PostErrorCode = "PST-010003"
	ErrCodeInvalidCommentContent PostErrorCode = "PST-010004"
	ErrCodeMissingPostFields     PostErrorCode = "PST-010005"

	// Lookup and permission errors (02XXXX)
	ErrCodePostNotFound  PostErrorCode = "PST-020001"
	ErrCodeNotPostAuthor PostErrorCode = "PST-020002"
)

// PostError represents a post error with code and message.
type PostError struct {
	Code    PostErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PostError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PostError) Unwrap() error {
	return e.Err
}

// NewPostError creates a new PostError with the given code and message.
func NewPostError(code PostErrorCode, message string, err error) *PostError {
	return &PostError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
