package billing

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sayit-app/sayit-api/app/models"
)

// ErrTransactionNotFound is returned when no pending transaction matches the
// notification's order id. Replays of already-settled orders land here too,
// which is the idempotency guard: a finalized transaction is never
// reprocessed.
var ErrTransactionNotFound = errors.New("transaction not found or already processed")

// HistoryCurrency is the currency recorded on settled payments.
const HistoryCurrency = "IDR"

// Service applies verified payment notifications to local state.
type Service struct {
	db *gorm.DB
}

// NewService creates a billing service from a GORM DB handle.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ProcessNotification transitions the transaction named by a
// gateway-verified notification. Success statuses run the full settlement;
// failure statuses only update the transaction; anything else is accepted
// without state change.
func (s *Service) ProcessNotification(orderID, transactionStatus, rawPayload string) error {
	var trx models.Transaction
	err := s.db.Preload("Price").Preload("Price.Plan").
		Where("id = ? AND status = ?", orderID, models.TransactionStatusPending).
		First(&trx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTransactionNotFound
		}
		return err
	}

	switch {
	case IsSuccessStatus(transactionStatus):
		return s.settle(&trx, rawPayload)
	case IsFailureStatus(transactionStatus):
		return s.db.Model(&models.Transaction{}).
			Where("id = ?", trx.ID).
			Update("status", transactionStatus).Error
	default:
		return nil
	}
}

// settle finalizes a successful payment in one transaction: settle the
// transaction row, upsert the user's single subscription with a fresh
// period, credit the plan's token grant and append the billing-history row.
func (s *Service) settle(trx *models.Transaction, rawPayload string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Transaction{}).
			Where("id = ?", trx.ID).
			Update("status", models.TransactionStatusSettlement).Error; err != nil {
			return err
		}

		interval := models.PricingIntervalMonth
		intervalCount := 1
		tokens := 0
		if trx.Price != nil {
			if trx.Price.Interval != "" {
				interval = trx.Price.Interval
			}
			if trx.Price.IntervalCount > 0 {
				intervalCount = trx.Price.IntervalCount
			}
			if trx.Price.Plan != nil {
				tokens = trx.Price.Plan.Tokens
			}
		}

		now := time.Now()
		periodEnd := PeriodEnd(interval, intervalCount, now)

		// The unique index on user_id turns this into insert-or-update:
		// a second successful payment replaces the price and period of the
		// one subscription row the user has.
		subscription := models.Subscription{
			UserID:                 trx.UserID,
			PriceID:                trx.PriceID,
			Status:                 models.SubscriptionStatusActive,
			ProviderSubscriptionID: trx.ID,
			Metadata:               rawPayload,
			CurrentPeriodStart:     now,
			CurrentPeriodEnd:       periodEnd,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"price_id", "status", "provider_subscription_id",
				"metadata", "current_period_start", "current_period_end",
				"canceled_at",
			}),
		}).Create(&subscription).Error
		if err != nil {
			return err
		}

		// Re-read: on conflict-update the in-memory struct does not carry
		// the existing row's id.
		var current models.Subscription
		if err := tx.Where("user_id = ?", trx.UserID).First(&current).Error; err != nil {
			return err
		}

		if tokens > 0 {
			if err := tx.Model(&models.User{}).
				Where("id = ?", trx.UserID).
				Update("token_balance", gorm.Expr("token_balance + ?", tokens)).Error; err != nil {
				return err
			}
		}

		// The order id doubles as the provider-side invoice reference,
		// which also makes the history insert idempotent per transaction.
		history := models.BillingHistory{
			UserID:            trx.UserID,
			SubscriptionID:    &current.ID,
			PriceID:           &trx.PriceID,
			Amount:            trx.GrossAmount,
			Currency:          HistoryCurrency,
			Status:            models.BillingHistoryStatusPaid,
			ProviderInvoiceID: trx.ID,
		}
		return tx.Create(&history).Error
	})
}
