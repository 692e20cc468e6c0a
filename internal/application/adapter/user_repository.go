// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// CreateWithProfile stores a user and its profile atomically.
	CreateWithProfile(ctx context.Context, user *entity.User, profile *entity.Profile) error

	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update updates an existing user in the database.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user and everything they own.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ProfileRepository defines the interface for profile persistence operations.
type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	FindByUsername(ctx context.Context, username string) (*entity.Profile, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, profile *entity.Profile) error
}
