package rayid_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"country-pulse/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("ray_id").(string))
	})
	return app
}

func TestAssignsRayID(t *testing.T) {
	resp, err := newApp().Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	rid := resp.Header.Get(rayid.HeaderName)
	_, err = uuid.Parse(rid)
	assert.NoError(t, err)
}

func TestReusesIncomingRayID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(rayid.HeaderName, "upstream-ray")

	resp, err := newApp().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "upstream-ray", resp.Header.Get(rayid.HeaderName))
}
