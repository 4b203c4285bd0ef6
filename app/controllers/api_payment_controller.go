package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sayit-app/sayit-api/app/models"
	"github.com/sayit-app/sayit-api/app/repository"
	"github.com/sayit-app/sayit-api/internal/pkg/billing"
	"github.com/sayit-app/sayit-api/internal/pkg/database"
)

// paymentGateway is swappable so tests can inject a fake gateway.
var paymentGateway = billing.DefaultGateway

// HandleCreateCharge initiates a checkout for a price: records a pending
// transaction whose uuid doubles as the gateway order id, then asks the
// gateway for a checkout token.
func HandleCreateCharge(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return nil
	}

	var req struct {
		PriceID uint `json:"price_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.PriceID == 0 {
		return jsonError(c, fiber.StatusBadRequest, "price_id is required")
	}

	price, err := repository.GetGlobalFactory().GetBillingRepository().GetPriceWithPlan(req.PriceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Price not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load price")
	}
	if price.Plan == nil {
		return jsonError(c, fiber.StatusNotFound, "Price has no plan")
	}

	// Prices are stored in minor units; the gateway expects whole rupiah.
	grossAmount := price.UnitAmount / 100

	trx := models.Transaction{
		UserID:      userID,
		PriceID:     price.ID,
		GrossAmount: grossAmount,
	}
	if err := database.GetDB().Create(&trx).Error; err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to create transaction")
	}

	token, err := paymentGateway().CreateCheckoutToken(trx.ID, grossAmount, price.Plan.Name, price.Plan.Name)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to create checkout token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token})
}
