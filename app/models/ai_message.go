package models

import "time"

const (
	MessageTypeUser = "user"
	MessageTypeAI   = "ai"
)

// AiMessage is a single message inside a chat. Rows are immutable once
// created; there is no update path.
type AiMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ChatID    uint      `gorm:"not null;index" json:"chat_id"`
	Type      string    `gorm:"type:varchar(10);not null" json:"type" validate:"oneof=user ai"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
