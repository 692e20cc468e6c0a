// Package storage implements object storage adapters.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/pawz-connect/backend/config"
	"github.com/pawz-connect/backend/internal/application/adapter"
)

// MinIOStorage implements adapter.ObjectStorage on an S3 compatible bucket.
type MinIOStorage struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

var _ adapter.ObjectStorage = (*MinIOStorage)(nil)

// NewMinIOStorage connects to MinIO and makes sure the bucket exists.
func NewMinIOStorage(ctx context.Context, cfg *config.MinIOConfig) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		slog.Info("Created storage bucket", "bucket", cfg.Bucket)
	}

	return &MinIOStorage{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: publicBaseURL(cfg),
	}, nil
}

// Put uploads the object and returns its public URL.
func (s *MinIOStorage) Put(ctx context.Context, input adapter.PutObjectInput) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, input.Key, input.Body, input.Size, minio.PutObjectOptions{
		ContentType:  input.ContentType,
		CacheControl: input.CacheControl,
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object %s: %w", input.Key, err)
	}
	return s.publicBaseURL + "/" + input.Key, nil
}

// publicBaseURL falls back to the bucket URL on the endpoint when no CDN
// base is configured.
func publicBaseURL(cfg *config.MinIOConfig) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
}
