package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Nabielworkss/Corner-Inspirasi/internal/config"
	"github.com/Nabielworkss/Corner-Inspirasi/internal/database"
	pcategory "github.com/Nabielworkss/Corner-Inspirasi/internal/platform/category"
)

func GetCategories(c *fiber.Ctx) error {
	db := c.Locals("db").(*gorm.DB)

	categoryService := pcategory.NewService(db)

	categories, err := categoryService.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	data := make([]fiber.Map, 0, len(categories))
	for _, category := range categories {
		data = append(data, fiber.Map{
			"id": category.ID,
			"attributes": fiber.Map{
				"name":      category.Name,
				"slug":      category.Slug,
				"createdAt": category.CreatedAt,
				"updatedAt": category.UpdatedAt,
			},
		})
	}

	return c.JSON(fiber.Map{"data": data})
}

func CreateCategory(c *fiber.Ctx) error {
	db := c.Locals("db").(*gorm.DB)

	categoryService := pcategory.NewService(db)

	type CategoryInput struct {
		Name string `json:"name" validate:"required"`
		Slug string `json:"slug" validate:"required"`
	}

	var input CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	if err := config.Validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	category := database.Category{
		Name: input.Name,
		Slug: input.Slug,
	}
	if err := categoryService.Create(c.Context(), &category); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"id": category.ID,
			"attributes": fiber.Map{
				"name": category.Name,
				"slug": category.Slug,
			},
		},
	})
}
