package mock

import (
	"context"
	"strings"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

// Moderator rejects reviews containing a blocked word and approves the rest.
type Moderator struct {
	Blocked []string
}

// NewModerator creates a moderator blocking the given words.
func NewModerator(blocked ...string) *Moderator {
	return &Moderator{Blocked: blocked}
}

// IsAvailable always reports true.
func (m *Moderator) IsAvailable() bool {
	return true
}

// Moderate implements adapter.ReviewModerator.
func (m *Moderator) Moderate(_ context.Context, review string) (entity.ReviewStatus, error) {
	lowered := strings.ToLower(review)
	for _, word := range m.Blocked {
		if strings.Contains(lowered, strings.ToLower(word)) {
			return entity.ReviewStatusRejected, nil
		}
	}
	return entity.ReviewStatusApproved, nil
}
