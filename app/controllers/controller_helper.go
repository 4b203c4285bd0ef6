package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sayit-app/sayit-api/internal/pkg/usercontext"
)

// jsonError writes the service-wide error body shape.
func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// requireUser resolves the request's local user id. When the identity is
// missing or not yet mirrored into a local row it writes the error response
// itself and returns false; the caller must stop without touching the body.
func requireUser(c *fiber.Ctx) (uint, bool) {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		_ = jsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		return 0, false
	}
	if userCtx.UserID == 0 {
		_ = jsonError(c, fiber.StatusNotFound, "User not found")
		return 0, false
	}
	return userCtx.UserID, true
}

// parseIDParam reads a positive numeric :id route parameter. On a malformed
// value it writes the 400 response and returns false.
func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		_ = jsonError(c, fiber.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
