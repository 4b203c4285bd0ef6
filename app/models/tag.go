package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Tag is a user-defined label attached to notes. Names are unique per owner
// and tags are created lazily on first use.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:ux_tags_user_name,unique,priority:1" json:"user_id"`
	Name      string    `gorm:"type:varchar(50);not null;index:ux_tags_user_name,unique,priority:2" json:"name" validate:"required,min=1,max=50"`
	Notes     []Note    `gorm:"many2many:note_tags;" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// FindOrCreateTag returns the user's tag with the given name, creating it if
// it does not exist yet. A concurrent create racing on the unique index is
// resolved by re-fetching instead of failing the request.
func FindOrCreateTag(db *gorm.DB, userID uint, name string) (*Tag, error) {
	var tag Tag
	err := db.Where("user_id = ? AND name = ?", userID, name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag = Tag{UserID: userID, Name: name}
	if createErr := db.Create(&tag).Error; createErr != nil {
		// Lost the race on ux_tags_user_name; the row exists now.
		if fetchErr := db.Where("user_id = ? AND name = ?", userID, name).First(&tag).Error; fetchErr == nil {
			return &tag, nil
		}
		return nil, createErr
	}
	return &tag, nil
}
