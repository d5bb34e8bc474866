package middleware

import (
	"crypto/subtle"
	"os"

	"github.com/gofiber/fiber/v2"
)

// VerifyAdmin gates the ops endpoints behind a shared admin key. User
// authentication proper lives in a separate service; this only keeps the
// trigger and ledger endpoints off the open internet. The gate is disabled
// when ADMIN_API_KEY is unset (local development).
func VerifyAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := os.Getenv("ADMIN_API_KEY")
		if key == "" {
			return c.Next()
		}

		provided := c.Get("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid admin key",
			})
		}
		return c.Next()
	}
}
