package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Mood is a user-defined emotional state a note can reference. Names are
// unique per owner and moods are created lazily on first use.
type Mood struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:ux_moods_user_name,unique,priority:1" json:"user_id"`
	Name      string    `gorm:"type:varchar(50);not null;index:ux_moods_user_name,unique,priority:2" json:"name" validate:"required,min=1,max=50"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// FindOrCreateMood returns the user's mood with the given name, creating it
// if it does not exist yet. Unique-index races resolve by re-fetching.
func FindOrCreateMood(db *gorm.DB, userID uint, name string) (*Mood, error) {
	var mood Mood
	err := db.Where("user_id = ? AND name = ?", userID, name).First(&mood).Error
	if err == nil {
		return &mood, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	mood = Mood{UserID: userID, Name: name}
	if createErr := db.Create(&mood).Error; createErr != nil {
		if fetchErr := db.Where("user_id = ? AND name = ?", userID, name).First(&mood).Error; fetchErr == nil {
			return &mood, nil
		}
		return nil, createErr
	}
	return &mood, nil
}
