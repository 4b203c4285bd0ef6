package chat

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sayit-app/sayit-api/app/models"
	"github.com/sayit-app/sayit-api/internal/pkg/ai"
	"github.com/sayit-app/sayit-api/internal/pkg/tokenizer"
)

var (
	// ErrChatNotFound: no live chat with that id belongs to the user.
	ErrChatNotFound = errors.New("chat not found")
	// ErrInsufficientTokens: balance does not cover the input cost.
	ErrInsufficientTokens = errors.New("insufficient tokens to start this request")
)

// SendResult is everything a successful send produces.
type SendResult struct {
	UserMessage     models.AiMessage `json:"userMessage"`
	AiMessage       models.AiMessage `json:"aiMessage"`
	NewTokenBalance int              `json:"newTokenBalance"`
	CostDetails     CostDetails      `json:"costDetails"`
	ChatUpdated     bool             `json:"chatUpdated"`
	NewTitle        string           `json:"newTitle,omitempty"`
}

// Service runs the token-metered message-send workflow.
type Service struct {
	db      *gorm.DB
	ai      ai.Service
	counter tokenizer.Counter
}

// NewService wires the workflow from its dependencies.
func NewService(db *gorm.DB, aiService ai.Service, counter tokenizer.Counter) *Service {
	return &Service{db: db, ai: aiService, counter: counter}
}

// SendMessage appends a user message to the chat and obtains the AI reply,
// all inside one database transaction: history reconstruction, input-cost
// pre-check against the balance, AI invocation, one combined balance
// deduction, both message inserts and the preview/title update. Any failure
// rolls the whole thing back.
//
// Only the input cost is pre-checked; a large reply can take the balance
// negative. That mirrors the pricing contract: the user commits to the
// request before the output size is known.
func (s *Service) SendMessage(ctx context.Context, userID, chatID uint, content string) (*SendResult, error) {
	var result SendResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var chat models.AiChat
		if err := tx.Where("user_id = ?", userID).First(&chat, chatID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrChatNotFound
			}
			return err
		}

		var history []models.AiMessage
		if err := tx.Where("chat_id = ?", chatID).Order("created_at ASC, id ASC").Find(&history).Error; err != nil {
			return err
		}

		inputTokens := s.counter.Count(HistoryText(history)) + s.counter.Count(content)
		inputCost := CeilCost(inputTokens, TokenUnitCostInput)

		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		if user.TokenBalance < inputCost {
			return ErrInsufficientTokens
		}

		aiHistory := make([]ai.Message, 0, len(history)+1)
		for _, msg := range history {
			role := ai.RoleUser
			if msg.Type == models.MessageTypeAI {
				role = ai.RoleAssistant
			}
			aiHistory = append(aiHistory, ai.Message{Role: role, Content: msg.Content})
		}
		aiHistory = append(aiHistory, ai.Message{Role: ai.RoleUser, Content: content})

		reply, err := s.ai.GenerateResponse(ctx, aiHistory)
		if err != nil {
			return err
		}

		outputTokens := s.counter.Count(reply)
		outputCost := CeilCost(outputTokens, TokenUnitCostOutput)
		totalCost := inputCost + outputCost

		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("token_balance", gorm.Expr("token_balance - ?", totalCost)).Error; err != nil {
			return err
		}

		userMessage := models.AiMessage{ChatID: chatID, Type: models.MessageTypeUser, Content: content}
		if err := tx.Create(&userMessage).Error; err != nil {
			return err
		}
		aiMessage := models.AiMessage{ChatID: chatID, Type: models.MessageTypeAI, Content: reply}
		if err := tx.Create(&aiMessage).Error; err != nil {
			return err
		}

		// Preview always follows the user's message, not the reply.
		updates := map[string]interface{}{
			"preview": models.TruncatePreview(content),
		}

		isFirstMessage := len(history) == 0
		if isFirstMessage {
			title, titleErr := s.ai.GenerateTitle(ctx, content)
			if titleErr != nil {
				title = ai.FallbackTitle
			}
			updates["title"] = title
			result.NewTitle = title
		}

		if err := tx.Model(&models.AiChat{}).Where("id = ?", chatID).Updates(updates).Error; err != nil {
			return err
		}

		var updatedUser models.User
		if err := tx.First(&updatedUser, userID).Error; err != nil {
			return err
		}

		result.UserMessage = userMessage
		result.AiMessage = aiMessage
		result.NewTokenBalance = updatedUser.TokenBalance
		result.CostDetails = CostDetails{
			InputTokens:  inputTokens,
			OutputTokens: outputTokens,
			TotalCost:    totalCost,
		}
		result.ChatUpdated = isFirstMessage

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
