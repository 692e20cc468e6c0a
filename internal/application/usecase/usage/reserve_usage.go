package usage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

// ReserveUsageInput represents the input for claiming one unit of quota.
type ReserveUsageInput struct {
	UserID uuid.UUID
}

// ReserveUsageUseCase claims quota before a metered request runs and gives
// it back when the request fails.
type ReserveUsageUseCase struct {
	tracker adapter.UsageTracker
}

// NewReserveUsageUseCase creates a new ReserveUsageUseCase instance.
func NewReserveUsageUseCase(tracker adapter.UsageTracker) *ReserveUsageUseCase {
	return &ReserveUsageUseCase{
		tracker: tracker,
	}
}

// Execute claims one unit. Allowed is false when a window is full; a store
// failure is reported as ErrCodeQuotaUnavailable and callers deny the request.
func (uc *ReserveUsageUseCase) Execute(ctx context.Context, input ReserveUsageInput) (*CheckQuotaOutput, error) {
	info, ok, err := uc.tracker.Reserve(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewUsageError(
			domainerror.ErrCodeQuotaUnavailable,
			"unable to check usage limits",
			err,
		)
	}

	return &CheckQuotaOutput{
		Allowed: ok,
		Info:    info,
	}, nil
}

// Release returns a unit claimed by Execute.
func (uc *ReserveUsageUseCase) Release(ctx context.Context, input ReserveUsageInput) error {
	if err := uc.tracker.Release(ctx, input.UserID); err != nil {
		return fmt.Errorf("failed to release usage: %w", err)
	}
	return nil
}
