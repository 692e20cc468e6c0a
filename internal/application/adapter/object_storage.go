package adapter

import (
	"context"
	"io"
)

// PutObjectInput describes an object to store.
type PutObjectInput struct {
	Key          string
	Body         io.Reader
	Size         int64
	ContentType  string
	CacheControl string
}

// ObjectStorage stores uploaded files and returns their public URL.
type ObjectStorage interface {
	Put(ctx context.Context, input PutObjectInput) (string, error)
}

// ProcessedImage is a re-encoded image ready for storage.
type ProcessedImage struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
}

// ImageProcessor inspects and compresses uploaded images.
type ImageProcessor interface {
	// DetectContentType sniffs the MIME type from the leading bytes.
	DetectContentType(data []byte) string

	// Compress downscales and re-encodes the image as JPEG.
	Compress(data []byte) (*ProcessedImage, error)
}
