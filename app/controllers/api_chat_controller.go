package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sayit-app/sayit-api/app/models"
	"github.com/sayit-app/sayit-api/app/repository"
	"github.com/sayit-app/sayit-api/internal/pkg/ai"
	"github.com/sayit-app/sayit-api/internal/pkg/chat"
	"github.com/sayit-app/sayit-api/internal/pkg/database"
	"github.com/sayit-app/sayit-api/internal/pkg/tokenizer"
)

// chatService is swappable so tests can inject a fake AI adapter.
var chatService = func() *chat.Service {
	return chat.NewService(database.GetDB(), ai.DefaultService(), tokenizer.Default())
}

// HandleCreateChat starts a new conversation thread.
func HandleCreateChat(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return nil
	}

	var req struct {
		Title string `json:"title"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return jsonError(c, fiber.StatusBadRequest, "Title is required")
	}

	thread := models.AiChat{
		UserID:  userID,
		Title:   req.Title,
		Preview: models.DefaultChatPreview,
	}
	if err := repository.GetGlobalFactory().GetChatRepository().Create(&thread); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to create chat")
	}

	return c.Status(fiber.StatusCreated).JSON(thread)
}

// HandleListChats returns the user's live chats, most recently active first.
func HandleListChats(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return nil
	}

	chats, err := repository.GetGlobalFactory().GetChatRepository().ListByUser(userID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load chats")
	}

	return c.JSON(fiber.Map{"chats": chats})
}

// HandleGetChat returns one chat with its full message history, oldest
// first.
func HandleGetChat(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return nil
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	thread, messages, err := repository.GetGlobalFactory().GetChatRepository().GetWithMessages(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Chat not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load chat")
	}

	return c.JSON(fiber.Map{
		"chat":     thread,
		"messages": messages,
	})
}

// HandleUpdateChat renames or stars a chat.
func HandleUpdateChat(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return nil
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	var req struct {
		Title   *string `json:"title"`
		Starred *bool   `json:"starred"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	repo := repository.GetGlobalFactory().GetChatRepository()
	thread, err := repo.GetByID(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Chat not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load chat")
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return jsonError(c, fiber.StatusBadRequest, "Title is required")
		}
		thread.Title = title
	}
	if req.Starred != nil {
		thread.Starred = *req.Starred
	}

	if err := repo.Update(thread); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to update chat")
	}

	return c.JSON(thread)
}

// HandleDeleteChat soft-deletes a chat thread.
func HandleDeleteChat(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return nil
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	err := repository.GetGlobalFactory().GetChatRepository().SoftDelete(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Chat not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "Failed to delete chat")
	}

	return c.JSON(fiber.Map{"message": "Chat deleted"})
}

// HandleSendChatMessage runs the token-metered send workflow and returns
// both messages, the cost breakdown and the new balance.
func HandleSendChatMessage(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return nil
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.Content) == "" {
		return jsonError(c, fiber.StatusBadRequest, "Message content is required")
	}

	result, err := chatService().SendMessage(c.Context(), userID, id, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrChatNotFound):
			return jsonError(c, fiber.StatusNotFound, "Chat not found")
		case errors.Is(err, chat.ErrInsufficientTokens):
			return jsonError(c, fiber.StatusPaymentRequired, "Insufficient token balance")
		default:
			return jsonError(c, fiber.StatusInternalServerError, "Failed to process message")
		}
	}

	return c.JSON(result)
}
