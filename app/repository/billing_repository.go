package repository

import (
	"gorm.io/gorm"

	"github.com/sayit-app/sayit-api/app/models"
)

// billingRepository implements the BillingRepository interface
type billingRepository struct {
	db *gorm.DB
}

// NewBillingRepository creates a new billing repository instance
func NewBillingRepository(db *gorm.DB) BillingRepository {
	return &billingRepository{db: db}
}

// ActivePlansWithPrices returns the purchasable catalog: active plans with
// their active prices only.
func (r *billingRepository) ActivePlansWithPrices() ([]models.BillingPlan, error) {
	var plans []models.BillingPlan
	err := r.db.Where("active = ?", true).
		Preload("Prices", "active = ?", true).
		Find(&plans).Error
	return plans, err
}

// HistoryByUser returns the user's billing history, newest first
func (r *billingRepository) HistoryByUser(userID uint) ([]models.BillingHistory, error) {
	var history []models.BillingHistory
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&history).Error
	return history, err
}

// GetPriceWithPlan loads a price together with its plan
func (r *billingRepository) GetPriceWithPlan(priceID uint) (*models.Price, error) {
	var price models.Price
	err := r.db.Preload("Plan").First(&price, priceID).Error
	if err != nil {
		return nil, err
	}
	return &price, nil
}

// SubscriptionWithPlanByUser loads the user's subscription with price and
// plan, or gorm.ErrRecordNotFound when the user never subscribed.
func (r *billingRepository) SubscriptionWithPlanByUser(userID uint) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.Preload("Price").Preload("Price.Plan").
		Where("user_id = ?", userID).
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
