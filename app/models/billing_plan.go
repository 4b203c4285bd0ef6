package models

// BillingPlan is a subscription package offered to users (e.g. Basic, Pro).
// Plans and their prices are seeded/administered externally; the API only
// reads them.
type BillingPlan struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Description string   `gorm:"type:text" json:"description"`
	Tokens      int      `gorm:"default:0" json:"tokens"`
	Features    []string `gorm:"serializer:json;type:text" json:"features"`
	IsFeatured  bool     `gorm:"default:false" json:"is_featured"`
	Active      bool     `gorm:"not null;default:true;index" json:"active"`
	Prices      []Price  `gorm:"foreignKey:PlanID" json:"prices,omitempty"`
}
