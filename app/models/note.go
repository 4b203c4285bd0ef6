package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Note is a journal entry. Deletion is soft: gorm.DeletedAt keeps removed
// rows out of every normal query while preserving them for the user-delete
// cascade.
type Note struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Title     string         `gorm:"type:varchar(255);not null" json:"title" validate:"required,max=255"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Starred   bool           `gorm:"default:false" json:"starred"`
	MoodID    *uint          `gorm:"default:null" json:"mood_id,omitempty"`
	Mood      *Mood          `gorm:"constraint:OnDelete:SET NULL" json:"mood,omitempty"`
	Tags      []Tag          `gorm:"many2many:note_tags;" json:"tags"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (n *Note) Validate() error {
	v := validator.New()

	return v.Struct(n)
}

// BeforeSave validates the note on every insert and full save.
func (n *Note) BeforeSave(tx *gorm.DB) error {
	return n.Validate()
}
