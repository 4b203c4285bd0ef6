package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sayit-app/sayit-api/app/models"
	"github.com/sayit-app/sayit-api/app/repository"
	"github.com/sayit-app/sayit-api/internal/pkg/cache"
)

const (
	planCatalogCacheKey = "billing:plans"
	planCatalogCacheTTL = 5 * time.Minute
)

// HandleGetBillingPlans returns the purchasable plan catalog. The catalog
// changes rarely, so it is served from the cache when possible.
func HandleGetBillingPlans(c *fiber.Ctx) error {
	if _, ok := requireUser(c); !ok {
		return nil
	}

	if cached, err := cache.Get(planCatalogCacheKey); err == nil && cached != "" {
		var plans []models.BillingPlan
		if err := json.Unmarshal([]byte(cached), &plans); err == nil && len(plans) > 0 {
			return c.JSON(fiber.Map{"plans": plans})
		}
	}

	plans, err := repository.GetGlobalFactory().GetBillingRepository().ActivePlansWithPrices()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load plans")
	}
	if len(plans) == 0 {
		return jsonError(c, fiber.StatusNotFound, "No billing plans available")
	}

	if encoded, err := json.Marshal(plans); err == nil {
		_ = cache.Set(planCatalogCacheKey, string(encoded), planCatalogCacheTTL)
	}

	return c.JSON(fiber.Map{"plans": plans})
}

// HandleGetBillingHistory returns the user's billing history, newest first.
func HandleGetBillingHistory(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return nil
	}

	history, err := repository.GetGlobalFactory().GetBillingRepository().HistoryByUser(userID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load billing history")
	}
	if len(history) == 0 {
		return jsonError(c, fiber.StatusNotFound, "No billing history found")
	}

	return c.JSON(fiber.Map{"history": history})
}
