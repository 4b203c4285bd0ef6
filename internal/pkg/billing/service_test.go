package billing

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/sayit-app/sayit-api/app/models"
)

func newBillingTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	assert.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.BillingPlan{},
		&models.Price{},
		&models.Subscription{},
		&models.Transaction{},
		&models.BillingHistory{},
	))
	return db
}

type billingFixture struct {
	user  models.User
	plan  models.BillingPlan
	price models.Price
}

func seedBilling(t *testing.T, db *gorm.DB) billingFixture {
	t.Helper()

	user := models.User{ClerkID: "user_billing", TokenBalance: 0}
	assert.NoError(t, db.Create(&user).Error)

	plan := models.BillingPlan{Name: "Pro", Tokens: 100, Active: true}
	assert.NoError(t, db.Create(&plan).Error)

	price := models.Price{
		PlanID:        &plan.ID,
		Active:        true,
		UnitAmount:    5000000,
		Currency:      "IDR",
		Type:          models.PricingTypeRecurring,
		Interval:      models.PricingIntervalMonth,
		IntervalCount: 1,
	}
	assert.NoError(t, db.Create(&price).Error)

	return billingFixture{user: user, plan: plan, price: price}
}

func pendingTransaction(t *testing.T, db *gorm.DB, userID, priceID uint) models.Transaction {
	t.Helper()

	trx := models.Transaction{UserID: userID, PriceID: priceID, GrossAmount: 50000}
	assert.NoError(t, db.Create(&trx).Error)
	assert.Equal(t, models.TransactionStatusPending, trx.Status)
	return trx
}

func TestProcessNotificationSettlement(t *testing.T) {
	db := newBillingTestDB(t)
	fx := seedBilling(t, db)
	trx := pendingTransaction(t, db, fx.user.ID, fx.price.ID)

	svc := NewService(db)
	err := svc.ProcessNotification(trx.ID, "settlement", `{"transaction_status":"settlement"}`)
	assert.NoError(t, err)

	var settled models.Transaction
	assert.NoError(t, db.First(&settled, "id = ?", trx.ID).Error)
	assert.Equal(t, models.TransactionStatusSettlement, settled.Status)

	var user models.User
	assert.NoError(t, db.First(&user, fx.user.ID).Error)
	assert.Equal(t, 100, user.TokenBalance)

	var subs []models.Subscription
	assert.NoError(t, db.Find(&subs).Error)
	assert.Len(t, subs, 1)
	assert.Equal(t, models.SubscriptionStatusActive, subs[0].Status)
	assert.Equal(t, fx.price.ID, subs[0].PriceID)
	assert.Equal(t, trx.ID, subs[0].ProviderSubscriptionID)
	assert.WithinDuration(t, time.Now().AddDate(0, 1, 0), subs[0].CurrentPeriodEnd, time.Minute)

	var history []models.BillingHistory
	assert.NoError(t, db.Find(&history).Error)
	assert.Len(t, history, 1)
	assert.Equal(t, models.BillingHistoryStatusPaid, history[0].Status)
	assert.Equal(t, HistoryCurrency, history[0].Currency)
	assert.Equal(t, int64(50000), history[0].Amount)
	assert.Equal(t, trx.ID, history[0].ProviderInvoiceID)
}

func TestProcessNotificationReplayIsRejected(t *testing.T) {
	db := newBillingTestDB(t)
	fx := seedBilling(t, db)
	trx := pendingTransaction(t, db, fx.user.ID, fx.price.ID)

	svc := NewService(db)
	assert.NoError(t, svc.ProcessNotification(trx.ID, "settlement", "{}"))

	// A replayed webhook finds no pending transaction and changes nothing.
	err := svc.ProcessNotification(trx.ID, "settlement", "{}")
	assert.ErrorIs(t, err, ErrTransactionNotFound)

	var user models.User
	assert.NoError(t, db.First(&user, fx.user.ID).Error)
	assert.Equal(t, 100, user.TokenBalance)

	var historyCount int64
	assert.NoError(t, db.Model(&models.BillingHistory{}).Count(&historyCount).Error)
	assert.Equal(t, int64(1), historyCount)
}

func TestProcessNotificationSecondPaymentReplacesSubscription(t *testing.T) {
	db := newBillingTestDB(t)
	fx := seedBilling(t, db)

	svc := NewService(db)
	trx1 := pendingTransaction(t, db, fx.user.ID, fx.price.ID)
	assert.NoError(t, svc.ProcessNotification(trx1.ID, "settlement", "{}"))

	yearly := models.Price{
		PlanID:        &fx.plan.ID,
		Active:        true,
		UnitAmount:    50000000,
		Currency:      "IDR",
		Type:          models.PricingTypeRecurring,
		Interval:      models.PricingIntervalYear,
		IntervalCount: 1,
	}
	assert.NoError(t, db.Create(&yearly).Error)

	trx2 := pendingTransaction(t, db, fx.user.ID, yearly.ID)
	assert.NoError(t, svc.ProcessNotification(trx2.ID, "capture", "{}"))

	var subs []models.Subscription
	assert.NoError(t, db.Find(&subs).Error)
	assert.Len(t, subs, 1)
	assert.Equal(t, yearly.ID, subs[0].PriceID)
	assert.Equal(t, trx2.ID, subs[0].ProviderSubscriptionID)
	assert.WithinDuration(t, time.Now().AddDate(1, 0, 0), subs[0].CurrentPeriodEnd, time.Minute)

	var user models.User
	assert.NoError(t, db.First(&user, fx.user.ID).Error)
	assert.Equal(t, 200, user.TokenBalance)
}

func TestProcessNotificationFailureOnlyUpdatesStatus(t *testing.T) {
	db := newBillingTestDB(t)
	fx := seedBilling(t, db)
	trx := pendingTransaction(t, db, fx.user.ID, fx.price.ID)

	svc := NewService(db)
	assert.NoError(t, svc.ProcessNotification(trx.ID, "expire", "{}"))

	var expired models.Transaction
	assert.NoError(t, db.First(&expired, "id = ?", trx.ID).Error)
	assert.Equal(t, models.TransactionStatusExpire, expired.Status)

	var user models.User
	assert.NoError(t, db.First(&user, fx.user.ID).Error)
	assert.Equal(t, 0, user.TokenBalance)

	var subCount, historyCount int64
	assert.NoError(t, db.Model(&models.Subscription{}).Count(&subCount).Error)
	assert.NoError(t, db.Model(&models.BillingHistory{}).Count(&historyCount).Error)
	assert.Zero(t, subCount)
	assert.Zero(t, historyCount)
}

func TestProcessNotificationUnknownStatusIsNoOp(t *testing.T) {
	db := newBillingTestDB(t)
	fx := seedBilling(t, db)
	trx := pendingTransaction(t, db, fx.user.ID, fx.price.ID)

	svc := NewService(db)
	assert.NoError(t, svc.ProcessNotification(trx.ID, "refund", "{}"))

	var unchanged models.Transaction
	assert.NoError(t, db.First(&unchanged, "id = ?", trx.ID).Error)
	assert.Equal(t, models.TransactionStatusPending, unchanged.Status)
}

func TestProcessNotificationUnknownOrder(t *testing.T) {
	db := newBillingTestDB(t)
	seedBilling(t, db)

	svc := NewService(db)
	err := svc.ProcessNotification("no-such-order", "settlement", "{}")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}
