package upload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"testing"

	"github.com/pawz-connect/backend/internal/application/adapter"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

type fakeStorage struct {
	puts []adapter.PutObjectInput
	body []byte
	err  error
}

func (f *fakeStorage) Put(_ context.Context, input adapter.PutObjectInput) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.body, _ = io.ReadAll(input.Body)
	f.puts = append(f.puts, input)
	return "https://cdn.example/" + input.Key, nil
}

type fakeProcessor struct {
	contentType string
	err         error
}

func (f fakeProcessor) DetectContentType([]byte) string { return f.contentType }

func (f fakeProcessor) Compress(data []byte) (*adapter.ProcessedImage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &adapter.ProcessedImage{Data: []byte("jpeg-bytes"), ContentType: "image/jpeg", Width: 1200, Height: 800}, nil
}

func uploadCode(t *testing.T, err error) domainerror.UploadErrorCode {
	t.Helper()
	var uploadErr *domainerror.UploadError
	if !errors.As(err, &uploadErr) {
		t.Fatalf("expected UploadError, got %v", err)
	}
	return uploadErr.Code
}

func TestUploadImageUseCase_Execute(t *testing.T) {
	small := []byte("not really an image")
	tooBig := bytes.Repeat([]byte{0xFF}, 1<<20+1)

	tests := []struct {
		name      string
		processor fakeProcessor
		input     UploadImageInput
		expected  domainerror.UploadErrorCode
		message   string
	}{
		{
			name:      "unknown bucket",
			processor: fakeProcessor{contentType: "image/png"},
			input:     UploadImageInput{Bucket: "videos", Data: small},
			expected:  domainerror.ErrCodeInvalidBucket,
		},
		{
			name:      "empty file",
			processor: fakeProcessor{contentType: "image/png"},
			input:     UploadImageInput{Bucket: "pets"},
			expected:  domainerror.ErrCodeMissingFile,
		},
		{
			name:      "pdf is rejected",
			processor: fakeProcessor{contentType: "application/pdf"},
			input:     UploadImageInput{Bucket: "pets", Data: small},
			expected:  domainerror.ErrCodeUnsupportedImageType,
			message:   "Please upload a valid image file (JPEG, PNG, GIF, or WebP)",
		},
		{
			name:      "too large",
			processor: fakeProcessor{contentType: "image/jpeg"},
			input:     UploadImageInput{Bucket: "avatars", Data: tooBig},
			expected:  domainerror.ErrCodeImageTooLarge,
			message:   "Image must be less than 1MB",
		},
		{
			name:      "undecodable",
			processor: fakeProcessor{contentType: "image/gif", err: domainerror.ErrImageDecodeFailed},
			input:     UploadImageInput{Bucket: "posts", Data: small},
			expected:  domainerror.ErrCodeImageDecodeFailed,
		},
		{
			name:      "declared dimensions over the cap",
			processor: fakeProcessor{contentType: "image/png", err: domainerror.ErrImageDimensionsTooLarge},
			input:     UploadImageInput{Bucket: "posts", Data: small},
			expected:  domainerror.ErrCodeImageDimensions,
			message:   "Image dimensions are too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := &fakeStorage{}
			_, err := NewUploadImageUseCase(storage, tt.processor, 1).Execute(context.Background(), tt.input)
			if code := uploadCode(t, err); code != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, code)
			}
			if tt.message != "" {
				var uploadErr *domainerror.UploadError
				errors.As(err, &uploadErr)
				if uploadErr.Message != tt.message {
					t.Errorf("expected message %q, got %q", tt.message, uploadErr.Message)
				}
			}
			if len(storage.puts) != 0 {
				t.Error("nothing should be stored")
			}
		})
	}

	t.Run("stores compressed jpeg under a ulid key", func(t *testing.T) {
		storage := &fakeStorage{}
		uc := NewUploadImageUseCase(storage, fakeProcessor{contentType: "image/webp"}, 5)

		out, err := uc.Execute(context.Background(), UploadImageInput{Bucket: "pets", Data: small})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !regexp.MustCompile(`^pets/[0-9A-HJKMNP-TV-Z]{26}\.jpg$`).MatchString(out.Image.Key) {
			t.Errorf("unexpected key %q", out.Image.Key)
		}
		if out.Image.URL != "https://cdn.example/"+out.Image.Key {
			t.Errorf("unexpected url %q", out.Image.URL)
		}
		put := storage.puts[0]
		if put.CacheControl != "max-age=3600" || put.ContentType != "image/jpeg" || put.Size != int64(len("jpeg-bytes")) {
			t.Errorf("unexpected put %+v", put)
		}
		if string(storage.body) != "jpeg-bytes" {
			t.Errorf("expected compressed bytes stored, got %q", storage.body)
		}
		if uc.MaxSizeBytes() != 5<<20 {
			t.Errorf("unexpected max size %d", uc.MaxSizeBytes())
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		storage := &fakeStorage{err: errors.New("minio down")}
		_, err := NewUploadImageUseCase(storage, fakeProcessor{contentType: "image/png"}, 5).Execute(context.Background(), UploadImageInput{Bucket: "posts", Data: small})
		if uploadCode(t, err) != domainerror.ErrCodeStorageFailed {
			t.Error("expected storage failure")
		}
	})
}
