package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Nabielworkss/Corner-Inspirasi/internal/config"
	"github.com/Nabielworkss/Corner-Inspirasi/internal/database"
	puser "github.com/Nabielworkss/Corner-Inspirasi/internal/platform/user"
	"github.com/Nabielworkss/Corner-Inspirasi/pkg/utils"
)

// CreateUser lets a super admin add editorial accounts outside the
// registration allowlist.
func CreateUser(c *fiber.Ctx) error {
	db := c.Locals("db").(*gorm.DB)

	userService := puser.NewService(db)

	type CreateUserInput struct {
		Username string  `json:"username" validate:"required"`
		Email    string  `json:"email" validate:"required,email"`
		Password string  `json:"password" validate:"required,min=6"`
		FullName *string `json:"full_name"`
		Role     string  `json:"role" validate:"omitempty,oneof=super_admin editor"`
	}

	var input CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	if err := config.Validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	role := input.Role
	if role == "" {
		role = database.RoleEditor
	}

	user := database.User{
		Username:     input.Username,
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: hash,
		Role:         role,
	}
	if err := userService.Create(c.Context(), &user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "duplicate_account",
			"message": "Email sudah terdaftar",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(&user)
}
