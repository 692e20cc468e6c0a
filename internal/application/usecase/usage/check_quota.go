// Package usage contains use cases for the per-member usage quota.
package usage

import (
	"context"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

// CheckQuotaInput represents the input for a quota check.
type CheckQuotaInput struct {
	UserID uuid.UUID
}

// CheckQuotaOutput reports whether one more unit may be consumed.
type CheckQuotaOutput struct {
	Allowed bool
	Info    entity.UsageInfo
}

// CheckQuotaUseCase reads a member's consumption.
type CheckQuotaUseCase struct {
	tracker adapter.UsageTracker
}

// NewCheckQuotaUseCase creates a new CheckQuotaUseCase instance.
func NewCheckQuotaUseCase(tracker adapter.UsageTracker) *CheckQuotaUseCase {
	return &CheckQuotaUseCase{
		tracker: tracker,
	}
}

// Execute returns the usage. A failed lookup is reported as an error and
// callers deny the request.
func (uc *CheckQuotaUseCase) Execute(ctx context.Context, input CheckQuotaInput) (*CheckQuotaOutput, error) {
	info, err := uc.tracker.Usage(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewUsageError(
			domainerror.ErrCodeQuotaUnavailable,
			"unable to check usage limits",
			err,
		)
	}

	return &CheckQuotaOutput{
		Allowed: info.Allowed(),
		Info:    info,
	}, nil
}
