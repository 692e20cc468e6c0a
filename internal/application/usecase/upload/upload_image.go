// Package upload contains the image upload use case.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

const (
	cacheControl = "max-age=3600"

	// storeTimeout bounds a single storage round trip.
	storeTimeout = 30 * time.Second
)

var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// UploadImageInput carries the raw file.
type UploadImageInput struct {
	Bucket string
	Data   []byte
}

// UploadImageOutput describes the stored image.
type UploadImageOutput struct {
	Image *entity.UploadedImage
}

// UploadImageUseCase validates, compresses and stores an image.
type UploadImageUseCase struct {
	storage      adapter.ObjectStorage
	processor    adapter.ImageProcessor
	maxSizeBytes int64
}

// NewUploadImageUseCase creates a new UploadImageUseCase instance.
func NewUploadImageUseCase(storage adapter.ObjectStorage, processor adapter.ImageProcessor, maxSizeMB int) *UploadImageUseCase {
	return &UploadImageUseCase{
		storage:      storage,
		processor:    processor,
		maxSizeBytes: int64(maxSizeMB) << 20,
	}
}

// MaxSizeBytes is the largest upload accepted.
func (uc *UploadImageUseCase) MaxSizeBytes() int64 {
	return uc.maxSizeBytes
}

// Execute stores the image under <bucket>/<ulid>.jpg.
func (uc *UploadImageUseCase) Execute(ctx context.Context, input UploadImageInput) (*UploadImageOutput, error) {
	bucket := entity.UploadBucket(input.Bucket)
	if !bucket.IsValid() {
		return nil, domainerror.NewUploadError(
			domainerror.ErrCodeInvalidBucket,
			"bucket must be one of: avatars, pets, posts",
			domainerror.ErrInvalidBucket,
		)
	}

	if len(input.Data) == 0 {
		return nil, domainerror.NewUploadError(
			domainerror.ErrCodeMissingFile,
			"file is required",
			nil,
		)
	}

	if _, ok := allowedContentTypes[uc.processor.DetectContentType(input.Data)]; !ok {
		return nil, domainerror.NewUploadError(
			domainerror.ErrCodeUnsupportedImageType,
			"Please upload a valid image file (JPEG, PNG, GIF, or WebP)",
			domainerror.ErrUnsupportedImageType,
		)
	}

	if int64(len(input.Data)) > uc.maxSizeBytes {
		return nil, domainerror.NewUploadError(
			domainerror.ErrCodeImageTooLarge,
			fmt.Sprintf("Image must be less than %dMB", uc.maxSizeBytes>>20),
			domainerror.ErrImageTooLarge,
		)
	}

	processed, err := uc.processor.Compress(input.Data)
	if err != nil {
		if errors.Is(err, domainerror.ErrImageDimensionsTooLarge) {
			return nil, domainerror.NewUploadError(
				domainerror.ErrCodeImageDimensions,
				"Image dimensions are too large",
				err,
			)
		}
		if errors.Is(err, domainerror.ErrImageDecodeFailed) {
			return nil, domainerror.NewUploadError(
				domainerror.ErrCodeImageDecodeFailed,
				"image could not be read",
				err,
			)
		}
		return nil, fmt.Errorf("failed to compress image: %w", err)
	}

	key := fmt.Sprintf("%s/%s.jpg", bucket, ulid.Make())

	storeCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	url, err := uc.storage.Put(storeCtx, adapter.PutObjectInput{
		Key:          key,
		Body:         bytes.NewReader(processed.Data),
		Size:         int64(len(processed.Data)),
		ContentType:  processed.ContentType,
		CacheControl: cacheControl,
	})
	if err != nil {
		return nil, domainerror.NewUploadError(
			domainerror.ErrCodeStorageFailed,
			"failed to store image",
			err,
		)
	}

	return &UploadImageOutput{
		Image: &entity.UploadedImage{
			Key:         key,
			URL:         url,
			ContentType: processed.ContentType,
			Size:        int64(len(processed.Data)),
			Width:       processed.Width,
			Height:      processed.Height,
		},
	}, nil
}
