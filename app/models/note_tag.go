package models

import "time"

// NoteTag is the join table between notes and tags.
type NoteTag struct {
	NoteID    uint      `gorm:"primaryKey;autoIncrement:false" json:"note_id"`
	TagID     uint      `gorm:"primaryKey;autoIncrement:false" json:"tag_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
