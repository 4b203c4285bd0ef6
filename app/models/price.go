package models

const (
	PricingTypeOneTime   = "one_time"
	PricingTypeRecurring = "recurring"
)

const (
	PricingIntervalDay   = "day"
	PricingIntervalWeek  = "week"
	PricingIntervalMonth = "month"
	PricingIntervalYear  = "year"
)

// Price is a concrete charge option for a plan (monthly, yearly, ...).
// UnitAmount is stored in minor currency units.
type Price struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	PlanID          *uint        `gorm:"index" json:"plan_id,omitempty"`
	Plan            *BillingPlan `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"plan,omitempty"`
	Active          bool         `gorm:"not null;default:true;index" json:"active"`
	Description     string       `gorm:"type:text" json:"description"`
	UnitAmount      int64        `gorm:"default:0" json:"unit_amount"`
	Currency        string       `gorm:"type:varchar(3)" json:"currency"`
	Type            string       `gorm:"type:varchar(16)" json:"type" validate:"omitempty,oneof=one_time recurring"`
	Interval        string       `gorm:"type:varchar(16)" json:"interval" validate:"omitempty,oneof=day week month year"`
	IntervalCount   int          `gorm:"default:1" json:"interval_count"`
	TrialPeriodDays int          `gorm:"default:0" json:"trial_period_days"`
}
