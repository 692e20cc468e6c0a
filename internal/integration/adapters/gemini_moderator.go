package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
)

const defaultGeminiModel = "gemini-2.5-flash-lite"

const moderationPrompt = `You moderate reviews of pet care businesses (groomers, vets, pet stores, trainers).
Reject a review only if it contains hate speech, harassment, sexual content, personal data
such as phone numbers or home addresses, spam or advertising, or text unrelated to the business.
Negative but honest experiences must be approved.

Answer with a JSON object and nothing else: {"decision": "approved" | "rejected", "reason": "<short reason>"}

Review:
`

// GeminiModerator implements adapter.ReviewModerator using Google Gemini.
type GeminiModerator struct {
	apiKey    string
	modelName string
}

// NewGeminiModerator creates a moderator. An empty model name selects the default.
func NewGeminiModerator(apiKey, modelName string) *GeminiModerator {
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	return &GeminiModerator{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

var _ adapter.ReviewModerator = (*GeminiModerator)(nil)

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiModerator) IsAvailable() bool {
	return s.apiKey != ""
}

// Moderate asks Gemini whether the review text may be published.
func (s *GeminiModerator) Moderate(ctx context.Context, review string) (entity.ReviewStatus, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(moderationPrompt+review))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}
	return parseModerationDecision(text)
}

type moderationDecision struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok && text != "" {
			return string(text), nil
		}
	}
	return "", fmt.Errorf("no text content in response")
}

// parseModerationDecision accepts the model output with or without a
// markdown code fence.
func parseModerationDecision(text string) (entity.ReviewStatus, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var decision moderationDecision
	if err := json.Unmarshal([]byte(text), &decision); err != nil {
		return "", fmt.Errorf("failed to parse JSON response: %w, content: %s", err, text)
	}

	switch entity.ReviewStatus(strings.ToLower(strings.TrimSpace(decision.Decision))) {
	case entity.ReviewStatusApproved:
		return entity.ReviewStatusApproved, nil
	case entity.ReviewStatusRejected:
		return entity.ReviewStatusRejected, nil
	default:
		return "", fmt.Errorf("unexpected moderation decision %q", decision.Decision)
	}
}
