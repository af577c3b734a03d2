package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/Nabielworkss/Corner-Inspirasi/internal/config"
	"github.com/Nabielworkss/Corner-Inspirasi/internal/mail"
)

// SubmitContact forwards a contact-form submission to the operator
// mailbox. Delivery failures are logged but not surfaced to the visitor.
func SubmitContact(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.Config)

	type ContactInput struct {
		Name    string `json:"name" validate:"required"`
		Email   string `json:"email" validate:"required,email"`
		Subject string `json:"subject"`
		Message string `json:"message" validate:"required"`
	}

	var input ContactInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	if err := config.Validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	subject := input.Subject
	if subject == "" {
		subject = "Pesan baru dari formulir kontak"
	}

	if cfg.ContactEmail == "" || cfg.MailgunDomain == "" {
		log.Warn("Contact form submitted but mail delivery is not configured")
		return c.SendStatus(fiber.StatusNoContent)
	}

	message := mail.Email{
		Subject: subject,
		Body:    fmt.Sprintf("Dari: %s <%s>\n\n%s", input.Name, input.Email, input.Message),
		From:    fmt.Sprintf("Corner Inspirasi <no-reply@%s>", cfg.MailgunDomain),
		To:      []string{cfg.ContactEmail},
		ReplyTo: input.Email,
	}

	mailer := mail.NewMailer(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunAPIBase)
	if err := mailer.SendMail(&message); err != nil {
		log.Errorf("Failed to deliver contact message: %v", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
