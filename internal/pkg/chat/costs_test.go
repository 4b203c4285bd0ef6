package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sayit-app/sayit-api/app/models"
)

func TestCeilCost(t *testing.T) {
	tests := []struct {
		tokens int
		rate   float64
		want   int
	}{
		{tokens: 0, rate: TokenUnitCostInput, want: 0},
		{tokens: 1, rate: TokenUnitCostInput, want: 1},
		{tokens: 50, rate: TokenUnitCostInput, want: 1},
		{tokens: 51, rate: TokenUnitCostInput, want: 2},
		{tokens: 100, rate: TokenUnitCostInput, want: 2},
		{tokens: 1, rate: TokenUnitCostOutput, want: 1},
		{tokens: 33, rate: TokenUnitCostOutput, want: 1},
		{tokens: 34, rate: TokenUnitCostOutput, want: 2},
		{tokens: 100, rate: TokenUnitCostOutput, want: 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CeilCost(tt.tokens, tt.rate), "tokens=%d rate=%v", tt.tokens, tt.rate)
	}
}

// Costs round up per phase, not once on the total: 51 input tokens and 34
// output tokens bill 2+2, even though 85 tokens at a blended view would
// round differently.
func TestCostsRoundPerPhase(t *testing.T) {
	inputCost := CeilCost(51, TokenUnitCostInput)
	outputCost := CeilCost(34, TokenUnitCostOutput)

	assert.Equal(t, 2, inputCost)
	assert.Equal(t, 2, outputCost)
	assert.Equal(t, 4, inputCost+outputCost)
}

func TestHistoryText(t *testing.T) {
	assert.Equal(t, "", HistoryText(nil))

	messages := []models.AiMessage{
		{Type: models.MessageTypeUser, Content: "hello"},
		{Type: models.MessageTypeAI, Content: "hi there"},
	}
	assert.Equal(t, "hello\nhi there", HistoryText(messages))
}
