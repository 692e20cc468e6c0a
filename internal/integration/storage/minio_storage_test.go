package storage

import (
	"testing"

	"github.com/pawz-connect/backend/config"
)

func TestPublicBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.MinIOConfig
		expected string
	}{
		{
			name:     "configured base wins",
			cfg:      config.MinIOConfig{Endpoint: "minio:9000", Bucket: "uploads", PublicBaseURL: "https://cdn.pawz.example/"},
			expected: "https://cdn.pawz.example",
		},
		{
			name:     "plain endpoint",
			cfg:      config.MinIOConfig{Endpoint: "localhost:9000", Bucket: "uploads"},
			expected: "http://localhost:9000/uploads",
		},
		{
			name:     "ssl endpoint",
			cfg:      config.MinIOConfig{Endpoint: "s3.example.com", Bucket: "pawz", UseSSL: true},
			expected: "https://s3.example.com/pawz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := publicBaseURL(&tt.cfg); got != tt.expected {
				t.Errorf("publicBaseURL() = %q, want %q", got, tt.expected)
			}
		})
	}
}
