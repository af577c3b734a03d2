package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Nabielworkss/Corner-Inspirasi/internal/config"
	"github.com/Nabielworkss/Corner-Inspirasi/internal/platform/storage"
)

func UploadImage(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.Config)

	storageService := storage.NewStorageService(cfg.Storage(), cfg.UploadDir)

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	if !storageService.IsFileExtensionAllowed(file.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Tipe file tidak didukung. Gunakan JPG, PNG, WEBP, atau GIF",
		})
	}

	if file.Size > storage.MaxUploadSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Ukuran file terlalu besar. Maksimal 5MB",
		})
	}

	filename := storageService.GenerateFileName(file.Filename)

	if err := storageService.SaveFile(c, file, filename); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	return c.JSON(fiber.Map{
		"url":               fmt.Sprintf("/uploads/%s", filename),
		"filename":          filename,
		"original_filename": file.Filename,
	})
}
