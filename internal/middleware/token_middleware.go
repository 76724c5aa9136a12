package middleware

import (
	"strings"

	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AccountKey is the locals key under which the authenticated account is
// stored for downstream handlers.
const AccountKey = "account"

// TokenRequired is a Fiber middleware that resolves the bearer token from
// the Authorization header (format "Token <key>") to its account and stores
// it in the request locals.
func TokenRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Authorization header is required",
			})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Token") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Authorization header format must be 'Token <key>'",
			})
		}

		account, err := authService.Authenticate(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Invalid token",
			})
		}

		c.Locals(AccountKey, account)

		return c.Next()
	}
}
