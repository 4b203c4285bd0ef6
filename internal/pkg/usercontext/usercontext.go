package usercontext

import "github.com/gofiber/fiber/v2"

// Locals key under which the auth middleware stores the request's user.
const ContextKey = "USER_CONTEXT"

// UserContext carries the resolved identity of a request. ClerkID is the
// verified external identity; UserID is the local mirror row (0 when the
// identity has not been mirrored yet).
type UserContext struct {
	UserID     uint   `json:"user_id"`
	ClerkID    string `json:"clerk_id"`
	Username   string `json:"username"`
	IsLoggedIn bool   `json:"is_logged_in"`
}

// GetUserContext retrieves the user context from fiber context.
// Returns a default anonymous context if none is set.
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx := c.Locals(ContextKey); ctx != nil {
		return ctx.(UserContext)
	}
	return UserContext{IsLoggedIn: false}
}

// SetUserContext stores the user context for downstream handlers.
func SetUserContext(c *fiber.Ctx, userCtx UserContext) {
	c.Locals(ContextKey, userCtx)
}
