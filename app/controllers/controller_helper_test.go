package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/sayit-app/sayit-api/internal/pkg/usercontext"
)

func guardTestApp(userCtx usercontext.UserContext, handlerRan *bool) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		usercontext.SetUserContext(c, userCtx)
		return c.Next()
	})
	app.Get("/guarded", func(c *fiber.Ctx) error {
		userID, ok := requireUser(c)
		if !ok {
			return nil
		}
		*handlerRan = true
		return c.JSON(fiber.Map{"user_id": userID})
	})
	app.Get("/guarded/:id", func(c *fiber.Ctx) error {
		if _, ok := requireUser(c); !ok {
			return nil
		}
		id, ok := parseIDParam(c, "id")
		if !ok {
			return nil
		}
		*handlerRan = true
		return c.JSON(fiber.Map{"id": id})
	})
	return app
}

func decodeErrorBody(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestRequireUserRejectsMissingIdentity(t *testing.T) {
	handlerRan := false
	app := guardTestApp(usercontext.UserContext{IsLoggedIn: false}, &handlerRan)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized", decodeErrorBody(t, resp)["error"])
	assert.False(t, handlerRan)
}

func TestRequireUserStopsUnmirroredIdentity(t *testing.T) {
	// A valid token whose user row has not been mirrored yet: the guard
	// must answer 404 and the handler body must never run.
	handlerRan := false
	app := guardTestApp(usercontext.UserContext{IsLoggedIn: true, UserID: 0, ClerkID: "user_2abc"}, &handlerRan)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found", decodeErrorBody(t, resp)["error"])
	assert.False(t, handlerRan)
}

func TestRequireUserPassesMirroredIdentity(t *testing.T) {
	handlerRan := false
	app := guardTestApp(usercontext.UserContext{IsLoggedIn: true, UserID: 7}, &handlerRan)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, handlerRan)
}

func TestParseIDParamStopsMalformedID(t *testing.T) {
	handlerRan := false
	app := guardTestApp(usercontext.UserContext{IsLoggedIn: true, UserID: 7}, &handlerRan)

	for _, path := range []string{"/guarded/abc", "/guarded/0", "/guarded/-3"} {
		handlerRan = false
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "path %s", path)
		assert.Equal(t, "Invalid id", decodeErrorBody(t, resp)["error"])
		assert.False(t, handlerRan, "path %s", path)
	}
}

func TestParseIDParamPassesNumericID(t *testing.T) {
	handlerRan := false
	app := guardTestApp(usercontext.UserContext{IsLoggedIn: true, UserID: 7}, &handlerRan)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded/42", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, handlerRan)
}
