package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

// UsageTracker counts quota consumption per user.
type UsageTracker interface {
	// Usage returns the current daily and monthly consumption.
	Usage(ctx context.Context, userID uuid.UUID) (entity.UsageInfo, error)

	// Reserve consumes one unit in both windows if both have room. It
	// reports false, consuming nothing, when either window is full.
	Reserve(ctx context.Context, userID uuid.UUID) (entity.UsageInfo, bool, error)

	// Release returns a reserved unit.
	Release(ctx context.Context, userID uuid.UUID) error
}
