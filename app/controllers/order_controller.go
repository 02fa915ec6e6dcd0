package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/repository"
	"github.com/waveforge/waveforge/internal/pkg/payments"
	"github.com/waveforge/waveforge/internal/pkg/usercontext"
)

// customerIDForUser resolves the payment provider customer reference for the
// current session, or "" when the user never checked out.
func customerIDForUser(c *fiber.Ctx) (string, error) {
	userCtx := usercontext.GetUserContext(c)
	user, err := repository.GetGlobalFactory().GetUserRepository().GetByID(userCtx.UserID)
	if err != nil {
		return "", err
	}
	return user.CustomerID, nil
}

// HandleListOrders returns the user's completed payments with cart lines and
// receipt links.
func HandleListOrders(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "Login required")
	}

	client := payments.Get()
	if client == nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "unavailable", "Payments are not configured")
	}

	customerID, err := customerIDForUser(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "User not found")
		}
		return internalError(c, "Failed to load user")
	}

	orders, err := client.ListOrders(c.UserContext(), customerID)
	if err != nil {
		return internalError(c, "Failed to load orders")
	}

	return c.JSON(fiber.Map{"orders": orders})
}

// HandleCountOrders returns only the number of completed payments, used for
// the account badge without shipping the full history.
func HandleCountOrders(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "Login required")
	}

	client := payments.Get()
	if client == nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "unavailable", "Payments are not configured")
	}

	customerID, err := customerIDForUser(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "User not found")
		}
		return internalError(c, "Failed to load user")
	}

	orders, err := client.ListOrders(c.UserContext(), customerID)
	if err != nil {
		return internalError(c, "Failed to load orders")
	}

	return c.JSON(fiber.Map{"count": len(orders)})
}
