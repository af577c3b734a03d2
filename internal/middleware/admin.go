package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Nabielworkss/Corner-Inspirasi/internal/auth"
	"github.com/Nabielworkss/Corner-Inspirasi/internal/database"
)

// AdminMiddleware restricts a route to super admins. Must run after
// AuthMiddleware.
func AdminMiddleware(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*auth.Claims)

	if claims.Role != database.RoleSuperAdmin {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	}

	return c.Next()
}
