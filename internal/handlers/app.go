package handlers

import "github.com/gofiber/fiber/v2"

func GetAppInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Corner Inspirasi CMS API",
		"version": "1.0.0",
	})
}
