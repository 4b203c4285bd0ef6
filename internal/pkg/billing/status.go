package billing

import "github.com/sayit-app/sayit-api/app/models"

// IsSuccessStatus reports whether a gateway transaction status settles the
// payment. Midtrans uses "capture" for card payments and "settlement" for
// everything else.
func IsSuccessStatus(status string) bool {
	switch status {
	case models.TransactionStatusCapture, models.TransactionStatusSettlement:
		return true
	}
	return false
}

// IsFailureStatus reports whether a gateway transaction status terminally
// fails the payment.
func IsFailureStatus(status string) bool {
	switch status {
	case models.TransactionStatusExpire,
		models.TransactionStatusCancel,
		models.TransactionStatusDeny,
		models.TransactionStatusFailure:
		return true
	}
	return false
}
