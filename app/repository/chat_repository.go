package repository

import (
	"gorm.io/gorm"

	"github.com/sayit-app/sayit-api/app/models"
)

// chatRepository implements the ChatRepository interface
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat repository instance
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

// Create creates a new chat thread
func (r *chatRepository) Create(chat *models.AiChat) error {
	return r.db.Create(chat).Error
}

// GetByID retrieves a live chat owned by the user
func (r *chatRepository) GetByID(userID, id uint) (*models.AiChat, error) {
	var chat models.AiChat
	err := r.db.Where("user_id = ?", userID).First(&chat, id).Error
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

// GetWithMessages retrieves a chat with its full message history, oldest
// first.
func (r *chatRepository) GetWithMessages(userID, id uint) (*models.AiChat, []models.AiMessage, error) {
	chat, err := r.GetByID(userID, id)
	if err != nil {
		return nil, nil, err
	}

	var messages []models.AiMessage
	err = r.db.Where("chat_id = ?", id).Order("created_at ASC, id ASC").Find(&messages).Error
	if err != nil {
		return nil, nil, err
	}
	return chat, messages, nil
}

// ListByUser lists the user's live chats, most recently active first
func (r *chatRepository) ListByUser(userID uint) ([]models.AiChat, error) {
	var chats []models.AiChat
	err := r.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&chats).Error
	return chats, err
}

// Update saves scalar fields of the chat
func (r *chatRepository) Update(chat *models.AiChat) error {
	return r.db.Omit("Messages").Save(chat).Error
}

// SoftDelete marks a live chat as deleted
func (r *chatRepository) SoftDelete(userID, id uint) error {
	result := r.db.Where("user_id = ?", userID).Delete(&models.AiChat{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
