package controllers

import (
	"html"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/waveforge/waveforge/internal/pkg/env"
	"github.com/waveforge/waveforge/internal/pkg/hcaptcha"
	"github.com/waveforge/waveforge/internal/pkg/jobqueue"
	"github.com/waveforge/waveforge/internal/pkg/mail"
)

type contactRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Subject      string `json:"subject"`
	Message      string `json:"message"`
	CaptchaToken string `json:"captcha_token"`
}

// HandleContact verifies the captcha and forwards the message to support
func HandleContact(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return badRequest(c, "Name, email and message are required")
	}
	if req.Subject == "" {
		req.Subject = "Contact form message"
	}

	if env.GetEnv("HCAPTCHA_SECRET", "") != "" {
		ok, err := hcaptcha.Verify(req.CaptchaToken)
		if err != nil {
			return internalError(c, "Captcha verification failed")
		}
		if !ok {
			return jsonError(c, fiber.StatusUnprocessableEntity, "captcha_failed", "Captcha verification failed")
		}
	}

	support := env.GetEnv("SUPPORT_EMAIL", "")
	if support == "" {
		return internalError(c, "Contact mailbox is not configured")
	}

	payload := jobqueue.MailDeliveryJobPayload{
		To:      support,
		Subject: "[Contact] " + req.Subject,
		Body:    contactMailBody(req),
		ReplyTo: req.Email,
	}
	if _, err := jobqueue.GetManager().GetQueue().EnqueueJob(jobqueue.JobTypeMailDelivery, payload.ToMap()); err != nil {
		if err := mail.SendContactMail(req.Name, req.Email, req.Subject, req.Message); err != nil {
			return internalError(c, "Failed to send message")
		}
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "sent"})
}

func contactMailBody(req contactRequest) string {
	return "<p><strong>From:</strong> " + html.EscapeString(req.Name) + " &lt;" + html.EscapeString(req.Email) + "&gt;</p><hr><p>" + html.EscapeString(req.Message) + "</p>"
}
