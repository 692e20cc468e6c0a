package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

func TestParseModerationDecision(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected entity.ReviewStatus
		wantErr  bool
	}{
		{name: "approved", text: `{"decision": "approved", "reason": "honest"}`, expected: entity.ReviewStatusApproved},
		{name: "rejected upper case", text: `{"decision": "REJECTED", "reason": "spam"}`, expected: entity.ReviewStatusRejected},
		{name: "fenced", text: "```json\n{\"decision\": \"approved\"}\n```", expected: entity.ReviewStatusApproved},
		{name: "unknown decision", text: `{"decision": "maybe"}`, wantErr: true},
		{name: "not json", text: "approved", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseModerationDecision(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGeminiModerator_Unconfigured(t *testing.T) {
	moderator := NewGeminiModerator("", "")

	assert.False(t, moderator.IsAvailable())
	_, err := moderator.Moderate(context.Background(), "Great groomer")
	assert.Error(t, err)
}
