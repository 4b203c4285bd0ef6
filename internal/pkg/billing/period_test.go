package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sayit-app/sayit-api/app/models"
)

func TestPeriodEnd(t *testing.T) {
	from := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		interval string
		count    int
		want     time.Time
	}{
		{name: "single day", interval: models.PricingIntervalDay, count: 1, want: from.AddDate(0, 0, 1)},
		{name: "two weeks", interval: models.PricingIntervalWeek, count: 2, want: from.AddDate(0, 0, 14)},
		{name: "monthly", interval: models.PricingIntervalMonth, count: 1, want: time.Date(2025, 2, 15, 10, 0, 0, 0, time.UTC)},
		{name: "quarterly", interval: models.PricingIntervalMonth, count: 3, want: time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)},
		{name: "yearly", interval: models.PricingIntervalYear, count: 1, want: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)},
		{name: "unknown interval defaults to a month", interval: "fortnight", count: 5, want: time.Date(2025, 2, 15, 10, 0, 0, 0, time.UTC)},
		{name: "zero count defaults to one", interval: models.PricingIntervalMonth, count: 0, want: time.Date(2025, 2, 15, 10, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PeriodEnd(tt.interval, tt.count, from))
		})
	}
}

func TestStatusClassification(t *testing.T) {
	for _, status := range []string{models.TransactionStatusCapture, models.TransactionStatusSettlement} {
		assert.True(t, IsSuccessStatus(status), "expected %q to be a success status", status)
		assert.False(t, IsFailureStatus(status))
	}

	for _, status := range []string{
		models.TransactionStatusExpire,
		models.TransactionStatusCancel,
		models.TransactionStatusDeny,
		models.TransactionStatusFailure,
	} {
		assert.True(t, IsFailureStatus(status), "expected %q to be a failure status", status)
		assert.False(t, IsSuccessStatus(status))
	}

	// pending and unknown statuses are neither: the webhook acknowledges
	// them without state change.
	for _, status := range []string{models.TransactionStatusPending, "refund", ""} {
		assert.False(t, IsSuccessStatus(status))
		assert.False(t, IsFailureStatus(status))
	}
}
