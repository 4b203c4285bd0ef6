package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sayit-app/sayit-api/app/controllers"
)

type HttpRouter struct {
}

// InstallRouter registers the unauthenticated surface: the index page and
// the provider webhooks, which carry their own signature checks.
func (h HttpRouter) InstallRouter(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "sayit-api",
			"docs":    "/docs/api/v1",
		})
	})

	webhooks := app.Group("/webhooks")
	webhooks.Post("/clerk", controllers.HandleClerkWebhook)
	webhooks.Post("/midtrans", controllers.HandleMidtransWebhook)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
