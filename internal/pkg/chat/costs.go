package chat

import (
	"math"
	"strings"

	"github.com/sayit-app/sayit-api/app/models"
)

// Per-token billing rates. Output is priced higher than input.
const (
	TokenUnitCostInput  = 0.02
	TokenUnitCostOutput = 0.03
)

// CostDetails reports how a send was priced.
type CostDetails struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
	TotalCost    int `json:"totalCost"`
}

// CeilCost converts a token count into billed units at the given rate.
// Rounding is up, per phase: input cost and output cost are each ceiled
// independently before summing, never once on the total.
func CeilCost(tokens int, rate float64) int {
	return int(math.Ceil(float64(tokens) * rate))
}

// HistoryText flattens prior messages into the text whose tokens are billed
// as input alongside the new message.
func HistoryText(messages []models.AiMessage) string {
	parts := make([]string, len(messages))
	for i, msg := range messages {
		parts[i] = msg.Content
	}
	return strings.Join(parts, "\n")
}
