package models

import "time"

const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusTrialing = "trialing"
	SubscriptionStatusPastDue  = "past_due"
	SubscriptionStatusCanceled = "canceled"
	SubscriptionStatusUnpaid   = "unpaid"
)

// Subscription tracks the single subscription a user can hold. The unique
// index on user_id makes the payment webhook's insert-or-update an upsert.
type Subscription struct {
	ID                     uint       `gorm:"primaryKey" json:"id"`
	UserID                 uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	PriceID                uint       `gorm:"not null" json:"price_id"`
	Price                  *Price     `gorm:"foreignKey:PriceID" json:"price,omitempty"`
	Status                 string     `gorm:"type:varchar(32)" json:"status" validate:"omitempty,oneof=active trialing past_due canceled unpaid"`
	ProviderSubscriptionID string     `gorm:"type:varchar(191);uniqueIndex;default:null" json:"provider_subscription_id,omitempty"`
	Metadata               string     `gorm:"type:text" json:"metadata,omitempty"`
	CancelAtPeriodEnd      bool       `gorm:"default:false" json:"cancel_at_period_end"`
	CurrentPeriodStart     time.Time  `gorm:"not null" json:"current_period_start"`
	CurrentPeriodEnd       time.Time  `gorm:"not null" json:"current_period_end"`
	EndedAt                *time.Time `gorm:"type:timestamp;default:null" json:"ended_at,omitempty"`
	CancelAt               *time.Time `gorm:"type:timestamp;default:null" json:"cancel_at,omitempty"`
	CanceledAt             *time.Time `gorm:"type:timestamp;default:null" json:"canceled_at,omitempty"`
	TrialStart             *time.Time `gorm:"type:timestamp;default:null" json:"trial_start,omitempty"`
	TrialEnd               *time.Time `gorm:"type:timestamp;default:null" json:"trial_end,omitempty"`
	CreatedAt              time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
