package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sayit-app/sayit-api/app/controllers"
	"github.com/sayit-app/sayit-api/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello from api"})
	})

	api.Use(middleware.ClerkAuthMiddleware())

	api.Get("/user/me", controllers.HandleGetMe)

	notes := api.Group("/notes")
	notes.Get("/", controllers.HandleListNotes)
	// Fixed paths before the :id wildcard.
	notes.Get("/tags", controllers.HandleListNoteTags)
	notes.Get("/moods", controllers.HandleListNoteMoods)
	notes.Post("/", controllers.HandleCreateNote)
	notes.Get("/:id", controllers.HandleGetNote)
	notes.Put("/:id", controllers.HandleUpdateNote)
	notes.Delete("/:id", controllers.HandleDeleteNote)
	notes.Patch("/:id/star", controllers.HandleToggleNoteStar)

	chats := api.Group("/ai-chat")
	chats.Post("/", controllers.HandleCreateChat)
	chats.Get("/", controllers.HandleListChats)
	chats.Get("/:id", controllers.HandleGetChat)
	chats.Patch("/:id", controllers.HandleUpdateChat)
	chats.Delete("/:id", controllers.HandleDeleteChat)
	chats.Post("/:id/messages", controllers.HandleSendChatMessage)

	billing := api.Group("/billing")
	billing.Get("/plans", controllers.HandleGetBillingPlans)
	billing.Get("/history", controllers.HandleGetBillingHistory)

	subscription := api.Group("/subscription")
	subscription.Get("/status", controllers.HandleGetSubscriptionStatus)
	subscription.Post("/cancel", controllers.HandleCancelSubscription)

	api.Post("/payment/charge", controllers.HandleCreateCharge)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
