package models

import "time"

const (
	BillingHistoryStatusPaid = "paid"
	BillingHistoryStatusOpen = "open"
	BillingHistoryStatusVoid = "void"
)

// BillingHistory is an append-only record of settled payments, written by
// the payment webhook.
type BillingHistory struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"not null;index" json:"user_id"`
	SubscriptionID    *uint     `gorm:"default:null" json:"subscription_id,omitempty"`
	PriceID           *uint     `gorm:"default:null" json:"price_id,omitempty"`
	Amount            int64     `gorm:"not null" json:"amount"`
	Currency          string    `gorm:"type:varchar(3);not null" json:"currency"`
	Status            string    `gorm:"type:varchar(16);not null" json:"status"`
	InvoicePDF        string    `gorm:"type:text" json:"invoice_pdf,omitempty"`
	ProviderInvoiceID string    `gorm:"type:varchar(191);uniqueIndex;default:null" json:"provider_invoice_id,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}
