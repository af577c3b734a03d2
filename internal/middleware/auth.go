package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Nabielworkss/Corner-Inspirasi/internal/auth"
)

// AuthMiddleware guards endpoints behind a valid bearer token. On
// success the decoded claims are stored in the request locals under
// "claims"; the guarded handler never runs on failure.
func AuthMiddleware(c *fiber.Ctx) error {
	authService := c.Locals("auth").(*auth.Service)

	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "invalid_token",
			"message": "Token tidak valid. Silakan login kembali.",
		})
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := authService.Tokens().Verify(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "expired_token",
				"message": "Token telah kadaluarsa. Silakan login kembali.",
			})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "invalid_token",
			"message": "Token tidak valid. Silakan login kembali.",
		})
	}

	c.Locals("claims", claims)

	return c.Next()
}
