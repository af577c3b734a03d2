package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Nabielworkss/Corner-Inspirasi/internal/auth"
	"github.com/Nabielworkss/Corner-Inspirasi/internal/config"
)

func Register(c *fiber.Ctx) error {
	authService := c.Locals("auth").(*auth.Service)

	type RegisterInput struct {
		Username string  `json:"username" validate:"required"`
		Email    string  `json:"email" validate:"required,email"`
		Password string  `json:"password" validate:"required,min=6"`
		FullName *string `json:"full_name"`
	}

	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	if err := config.Validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	user, token, err := authService.Register(c.Context(), auth.RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		FullName: input.FullName,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNotAllowlisted):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":   "forbidden",
				"message": "Registrasi publik tidak diperbolehkan. Hubungi administrator.",
			})
		case errors.Is(err, auth.ErrEmailTaken):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "duplicate_account",
				"message": "Email sudah terdaftar",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"jwt": token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

func Login(c *fiber.Ctx) error {
	authService := c.Locals("auth").(*auth.Service)

	type LoginInput struct {
		Identifier string `json:"identifier" validate:"required"`
		Password   string `json:"password" validate:"required"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	if err := config.Validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	user, token, err := authService.Login(c.Context(), input.Identifier, input.Password)
	if err != nil {
		var rateLimited *auth.RateLimitError
		switch {
		case errors.As(err, &rateLimited):
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":               "rate_limited",
				"message":             fmt.Sprintf("Terlalu banyak percobaan login. Coba lagi dalam %d menit.", rateLimited.RetryAfterMinutes),
				"retry_after_minutes": rateLimited.RetryAfterMinutes,
			})
		case errors.Is(err, auth.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "invalid_credentials",
				"message": "Email atau password salah",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	return c.JSON(fiber.Map{
		"jwt": token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// ValidateToken lets the admin frontend check whether its stored token
// is still usable. The guard middleware already did the work.
func ValidateToken(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"valid": true})
}
