package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newWebhookTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/webhooks/clerk", HandleClerkWebhook)
	return app
}

func TestClerkWebhookMissingHeaders(t *testing.T) {
	app := newWebhookTestApp()

	req := httptest.NewRequest(http.MethodPost, "/webhooks/clerk",
		strings.NewReader(`{"type":"user.created","data":{"id":"user_1"}}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestClerkWebhookInvalidSignature(t *testing.T) {
	app := newWebhookTestApp()

	req := httptest.NewRequest(http.MethodPost, "/webhooks/clerk",
		strings.NewReader(`{"type":"user.created","data":{"id":"user_1"}}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("svix-id", "msg_test")
	req.Header.Set("svix-timestamp", "1700000000")
	req.Header.Set("svix-signature", "v1,bogus")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
