package mock

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/pawz-connect/backend/internal/application/adapter"
)

// Storage keeps uploaded objects in memory.
type Storage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

// NewStorage creates an empty object store.
func NewStorage() *Storage {
	return &Storage{objects: map[string][]byte{}}
}

// Put implements adapter.ObjectStorage.
func (s *Storage) Put(_ context.Context, input adapter.PutObjectInput) (string, error) {
	data, err := io.ReadAll(input.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read object body: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[input.Key] = data

	return "http://storage.test/" + input.Key, nil
}

// Count returns the number of stored objects.
func (s *Storage) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

// Clear drops every object.
func (s *Storage) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = map[string][]byte{}
}
