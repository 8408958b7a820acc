// Package auth provides an optional API-key guard for mutating routes.
package auth

import "github.com/gofiber/fiber/v2"

// Config holds settings for the auth middleware.
type Config struct {
	// ApiKey is the expected key. When empty, the guard is a no-op so local
	// setups work without credentials.
	ApiKey string
}

// HeaderName is the request header carrying the API key.
const HeaderName = "X-Api-Key"

// New returns a middleware that rejects requests without the configured key.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		if c.Get(HeaderName) != cfg.ApiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or missing API key",
			})
		}
		return c.Next()
	}
}
