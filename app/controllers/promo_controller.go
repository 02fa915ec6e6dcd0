package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/waveforge/waveforge/internal/pkg/payments"
)

type promoValidateRequest struct {
	Code   string  `json:"code"`
	Amount float64 `json:"amount"`
}

// HandleValidatePromoCode checks a promotion code against the payment
// provider and returns the discounted total for the cart.
func HandleValidatePromoCode(c *fiber.Ctx) error {
	var req promoValidateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Amount < 0 {
		return badRequest(c, "Amount must not be negative")
	}

	client := payments.Get()
	if client == nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "unavailable", "Payments are not configured")
	}

	result, err := client.ValidatePromo(c.UserContext(), req.Code, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrPromoNotFound):
			return notFound(c, "Promotion code not found")
		case errors.Is(err, payments.ErrPromoInactive):
			return jsonError(c, fiber.StatusGone, "gone", "Promotion code is no longer valid")
		default:
			return internalError(c, "Failed to validate promotion code")
		}
	}

	return c.JSON(result)
}
