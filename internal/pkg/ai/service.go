package ai

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sashabaranov/go-openai"

	"github.com/sayit-app/sayit-api/internal/pkg/env"
)

const (
	// Gemini's OpenAI-compatible endpoint; the adapter speaks the chat
	// completion protocol against it.
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	defaultModel  = "gemini-2.0-flash"

	// FallbackReply is returned when generation fails; the request still
	// completes and the reply is billed like any other output.
	FallbackReply = "I'm sorry, I encountered an error processing your request. Please try again later."

	// FallbackTitle is used when title generation fails.
	FallbackTitle = "New Conversation"

	maxTitleLength = 50
)

const responseSystemPrompt = "Your name is Sayit. You are a friendly, supportive AI designed to help " +
	"people through empathetic conversation. Always respond in the language the other person used first. " +
	"Never describe yourself as a venting or therapy outlet; only say that you are here to help with kind words."

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation handed to the adapter.
type Message struct {
	Role    string
	Content string
}

// Service wraps the hosted generative-language API behind the two
// operations the chat workflow needs.
type Service interface {
	GenerateResponse(ctx context.Context, history []Message) (string, error)
	GenerateTitle(ctx context.Context, firstMessage string) (string, error)
}

// GeminiService talks to Gemini through its OpenAI-compatible surface. The
// client is stateless per call, so one instance serves the whole process.
type GeminiService struct {
	client *openai.Client
	model  string
}

// NewGeminiService creates an adapter for the given API key.
func NewGeminiService(apiKey string) *GeminiService {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = geminiBaseURL

	return &GeminiService{
		client: openai.NewClientWithConfig(cfg),
		model:  defaultModel,
	}
}

// GenerateResponse produces the assistant reply for the full conversation
// history (the last entry being the user's new message). Failures degrade to
// FallbackReply instead of failing the request.
func (s *GeminiService) GenerateResponse(ctx context.Context, history []Message) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: responseSystemPrompt,
	})
	for _, msg := range history {
		role := openai.ChatMessageRoleUser
		if msg.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    messages,
		Temperature: 0.7,
		TopP:        0.95,
		MaxTokens:   1024,
	})
	if err != nil || len(resp.Choices) == 0 {
		return FallbackReply, nil
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return FallbackReply, nil
	}
	return reply, nil
}

// GenerateTitle produces a short chat title from the first message.
func (s *GeminiService) GenerateTitle(ctx context.Context, firstMessage string) (string, error) {
	prompt := fmt.Sprintf(
		"Based on the following message, create a short, relevant title (at most 30 characters, letters only):\n\n%q\n\nTitle:",
		firstMessage,
	)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
		MaxTokens:   50,
	})
	if err != nil || len(resp.Choices) == 0 {
		return FallbackTitle, nil
	}

	return ClampTitle(resp.Choices[0].Message.Content), nil
}

// ClampTitle normalizes a generated title: trimmed, never empty, never
// longer than maxTitleLength (longer titles are cut and get an ellipsis).
func ClampTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return FallbackTitle
	}
	runes := []rune(title)
	if len(runes) > maxTitleLength {
		return string(runes[:maxTitleLength-3]) + "..."
	}
	return title
}

var (
	defaultService Service
	defaultOnce    sync.Once
)

// DefaultService returns the lazily initialized process-wide adapter.
func DefaultService() Service {
	defaultOnce.Do(func() {
		defaultService = NewGeminiService(env.GetEnv("GEMINI_API_KEY", ""))
	})
	return defaultService
}
