package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TransactionStatusPending    = "pending"
	TransactionStatusSettlement = "settlement"
	TransactionStatusCapture    = "capture"
	TransactionStatusDeny       = "deny"
	TransactionStatusCancel     = "cancel"
	TransactionStatusExpire     = "expire"
	TransactionStatusFailure    = "failure"
)

// Transaction records one checkout attempt. Its UUID primary key is the
// order_id sent to the payment gateway, which is how the webhook finds its
// way back to the row. Status only ever moves away from pending via the
// webhook, never via the initiating request.
type Transaction struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	PriceID     uint      `gorm:"not null" json:"price_id"`
	Price       *Price    `gorm:"foreignKey:PriceID" json:"price,omitempty"`
	Status      string    `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
	GrossAmount int64     `gorm:"not null" json:"gross_amount"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeCreate generates the order id when the caller did not set one.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = TransactionStatusPending
	}
	return nil
}
