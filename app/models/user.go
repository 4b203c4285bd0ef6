package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// User mirrors an identity-provider account into the local database. Rows are
// created and deleted exclusively by the Clerk webhook; all owned resources
// cascade on delete.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ClerkID      string    `gorm:"type:varchar(191);not null;uniqueIndex" json:"clerk_id" validate:"required"`
	Username     string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"username" validate:"required,min=3,max=50"`
	TokenBalance int       `gorm:"not null;default:0" json:"token_balance"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

// BeforeCreate assigns a generated readable username when none was provided
// and validates the row before it is inserted.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Username == "" {
		u.Username = GenerateReadableUsername()
	}
	return u.Validate()
}
