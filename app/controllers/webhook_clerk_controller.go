package controllers

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sayit-app/sayit-api/app/models"
	"github.com/sayit-app/sayit-api/app/repository"
	"github.com/sayit-app/sayit-api/internal/pkg/env"
	"github.com/sayit-app/sayit-api/internal/pkg/identity"
)

var svixHeaders = []string{"svix-id", "svix-timestamp", "svix-signature"}

// HandleClerkWebhook mirrors identity-provider user lifecycle events into
// the local users table.
func HandleClerkWebhook(c *fiber.Ctx) error {
	headers := http.Header{}
	for _, name := range svixHeaders {
		value := c.Get(name)
		if value == "" {
			return c.Status(fiber.StatusBadRequest).SendString("Missing svix headers")
		}
		headers.Set(name, value)
	}

	secret := env.GetEnv("CLERK_WEBHOOK_SIGNING_SECRET", "")
	event, err := identity.VerifyWebhook(secret, c.Body(), headers)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid webhook signature")
	}

	switch event.Type {
	case identity.EventUserCreated:
		clerkID, err := event.UserID()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).SendString("Malformed event data")
		}
		user := models.User{ClerkID: clerkID}
		if err := repository.GetGlobalFactory().GetUserRepository().Create(&user); err != nil {
			log.Printf("clerk webhook: failed to create user %s: %v", clerkID, err)
			return jsonError(c, fiber.StatusInternalServerError, "Failed to create user")
		}
		return c.JSON(fiber.Map{"message": "User created"})

	case identity.EventUserDeleted:
		clerkID, err := event.UserID()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).SendString("Malformed event data")
		}
		if err := repository.GetGlobalFactory().GetUserRepository().DeleteByClerkID(clerkID); err != nil {
			log.Printf("clerk webhook: failed to delete user %s: %v", clerkID, err)
			return jsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
		}
		return c.JSON(fiber.Map{"message": "User deleted"})

	default:
		return c.SendString("Ignored")
	}
}
