package middleware

import (
	"errors"
	"strings"
	"sync"

	"github.com/clerk/clerk-sdk-go/v2"
	clerkjwt "github.com/clerk/clerk-sdk-go/v2/jwt"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sayit-app/sayit-api/app/repository"
	"github.com/sayit-app/sayit-api/internal/pkg/env"
	"github.com/sayit-app/sayit-api/internal/pkg/usercontext"
)

var clerkKeyOnce sync.Once

// ClerkAuthMiddleware verifies the bearer token against Clerk and resolves
// the external identity to the local user row. A valid token whose user has
// not been mirrored yet still passes; handlers answer those requests with
// 404 per the error taxonomy.
func ClerkAuthMiddleware() fiber.Handler {
	clerkKeyOnce.Do(func() {
		clerk.SetKey(env.GetEnv("CLERK_SECRET_KEY", ""))
	})

	return func(c *fiber.Ctx) error {
		token := extractBearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}

		claims, err := clerkjwt.Verify(c.Context(), &clerkjwt.VerifyParams{Token: token})
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}

		userCtx := usercontext.UserContext{
			ClerkID:    claims.RegisteredClaims.Subject,
			IsLoggedIn: true,
		}

		repo := repository.GetGlobalFactory().GetUserRepository()
		user, err := repo.GetByClerkID(userCtx.ClerkID)
		if err == nil {
			userCtx.UserID = user.ID
			userCtx.Username = user.Username
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to resolve user"})
		}

		usercontext.SetUserContext(c, userCtx)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}
