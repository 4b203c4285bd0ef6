package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/sayit-app/sayit-api/internal/pkg/billing"
	"github.com/sayit-app/sayit-api/internal/pkg/database"
)

// billingService is swappable so tests can inject a fake DB-backed service.
var billingService = func() *billing.Service {
	return billing.NewService(database.GetDB())
}

// HandleMidtransWebhook processes payment notifications. The notification
// body is untrusted; the transaction status is re-fetched from the gateway
// before any state change.
func HandleMidtransWebhook(c *fiber.Ctx) error {
	var notification struct {
		OrderID string `json:"order_id"`
	}
	if err := c.BodyParser(&notification); err != nil || notification.OrderID == "" {
		return jsonError(c, fiber.StatusBadRequest, "Invalid notification payload")
	}

	status, err := paymentGateway().CheckTransaction(notification.OrderID)
	if err != nil {
		log.Printf("midtrans webhook: verification failed for order %s: %v", notification.OrderID, err)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to verify transaction")
	}

	err = billingService().ProcessNotification(notification.OrderID, status.TransactionStatus, string(c.Body()))
	if err != nil {
		if errors.Is(err, billing.ErrTransactionNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Transaction not found")
		}
		log.Printf("midtrans webhook: processing failed for order %s: %v", notification.OrderID, err)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to process notification")
	}

	return c.JSON(fiber.Map{"message": "OK"})
}
