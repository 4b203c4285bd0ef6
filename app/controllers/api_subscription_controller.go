package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sayit-app/sayit-api/app/models"
	"github.com/sayit-app/sayit-api/app/repository"
	"github.com/sayit-app/sayit-api/internal/pkg/database"
)

// HandleGetSubscriptionStatus returns the user's token balance together
// with the current subscription, or null when the user never subscribed.
func HandleGetSubscriptionStatus(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return nil
	}

	factory := repository.GetGlobalFactory()
	user, err := factory.GetUserRepository().GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "User not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	sub, err := factory.GetBillingRepository().SubscriptionWithPlanByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{
				"tokenBalance": user.TokenBalance,
				"subscription": nil,
			})
		}
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load subscription")
	}

	planName := ""
	if sub.Price != nil && sub.Price.Plan != nil {
		planName = sub.Price.Plan.Name
	}

	return c.JSON(fiber.Map{
		"tokenBalance": user.TokenBalance,
		"subscription": fiber.Map{
			"plan":             planName,
			"status":           sub.Status,
			"priceId":          sub.PriceID,
			"currentPeriodEnd": sub.CurrentPeriodEnd,
			"canceledAt":       sub.CanceledAt,
		},
	})
}

// HandleCancelSubscription cancels an active, not-yet-canceled
// subscription. Anything else is reported as not found.
func HandleCancelSubscription(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return nil
	}

	sub, err := repository.GetGlobalFactory().GetBillingRepository().SubscriptionWithPlanByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "No active subscription found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load subscription")
	}
	if sub.Status != models.SubscriptionStatusActive || sub.CanceledAt != nil {
		return jsonError(c, fiber.StatusNotFound, "No active subscription found")
	}

	now := time.Now()
	err = database.GetDB().Model(&models.Subscription{}).
		Where("id = ?", sub.ID).
		Updates(map[string]interface{}{
			"status":      models.SubscriptionStatusCanceled,
			"canceled_at": now,
		}).Error
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to cancel subscription")
	}

	return c.JSON(fiber.Map{
		"message":    "Subscription canceled",
		"status":     models.SubscriptionStatusCanceled,
		"canceledAt": now,
	})
}
