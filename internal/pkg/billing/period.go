package billing

import (
	"time"

	"github.com/sayit-app/sayit-api/app/models"
)

// PeriodEnd computes when a subscription period started at `from` expires,
// given the price's interval metadata. Unknown intervals and non-positive
// counts default to one month.
func PeriodEnd(interval string, count int, from time.Time) time.Time {
	if count <= 0 {
		count = 1
	}

	switch interval {
	case models.PricingIntervalDay:
		return from.AddDate(0, 0, count)
	case models.PricingIntervalWeek:
		return from.AddDate(0, 0, 7*count)
	case models.PricingIntervalMonth:
		return from.AddDate(0, count, 0)
	case models.PricingIntervalYear:
		return from.AddDate(count, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}
