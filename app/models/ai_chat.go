package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultChatPreview is set when a chat is created and replaced by the first
// message the user sends.
const DefaultChatPreview = "New conversation started"

// ChatPreviewLength caps the preview column to the first N characters of the
// latest user message.
const ChatPreviewLength = 100

// AiChat is a conversation thread with the AI companion. Soft-deleted like
// notes; updated_at moves on every message send so listing stays ordered by
// recent activity.
type AiChat struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Title     string         `gorm:"type:varchar(255);not null" json:"title" validate:"required,max=255"`
	Preview   string         `gorm:"type:text" json:"preview"`
	Starred   bool           `gorm:"default:false" json:"starred"`
	Messages  []AiMessage    `gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TruncatePreview shortens a message to the preview length stored on a chat.
func TruncatePreview(content string) string {
	runes := []rune(content)
	if len(runes) <= ChatPreviewLength {
		return content
	}
	return string(runes[:ChatPreviewLength])
}
