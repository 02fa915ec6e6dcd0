package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/models"
	"github.com/waveforge/waveforge/app/repository"
	"github.com/waveforge/waveforge/internal/pkg/codes"
	"github.com/waveforge/waveforge/internal/pkg/mail"
	"github.com/waveforge/waveforge/internal/pkg/usercontext"
)

type redeemRequest struct {
	Code string `json:"code"`
}

// HandleRedeemCode redeems a reseller code for the authenticated user and
// grants the attached product. Codes are single use.
func HandleRedeemCode(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "Login required to redeem a code")
	}

	var req redeemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	normalized := codes.Normalize(req.Code)
	if normalized == "" {
		return badRequest(c, "Code is required")
	}

	repos := repository.GetGlobalFactory()
	code, err := repos.GetResellerRepository().GetCode(normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Unknown code")
		}
		return internalError(c, "Failed to look up code")
	}
	if code.IsRedeemed() {
		return jsonError(c, fiber.StatusGone, "gone", "This code has already been redeemed")
	}

	grantRepo := repos.GetGrantRepository()
	if existing, err := grantRepo.GetByUserAndProduct(userCtx.UserID, code.ProductID); err == nil && existing != nil && !existing.IsRevoked() {
		return jsonError(c, fiber.StatusConflict, "conflict", "You already own this product")
	}

	grant := &models.ProductGrant{
		UserID:         userCtx.UserID,
		ProductID:      code.ProductID,
		Source:         models.GrantSourceRedeem,
		ResellerCodeID: &code.ID,
	}
	// claim and grant happen in one transaction so a concurrent redemption
	// of the same code loses cleanly instead of double-granting
	if err := repos.GetResellerRepository().RedeemCode(code.ID, userCtx.UserID, grant); err != nil {
		if errors.Is(err, repository.ErrCodeAlreadyRedeemed) {
			return jsonError(c, fiber.StatusGone, "gone", "This code has already been redeemed")
		}
		return internalError(c, "Failed to redeem code")
	}

	product, err := repos.GetProductRepository().GetByID(code.ProductID)
	if err != nil {
		return internalError(c, "Failed to load granted product")
	}

	if user, err := repos.GetUserRepository().GetByID(userCtx.UserID); err == nil {
		if err := mail.SendCodeRedeemedMail(user.Email, user.Name, product.Name); err != nil {
			log.Warnf("Failed to send redemption mail to %s: %v", user.Email, err)
		}
	}

	return c.JSON(fiber.Map{
		"product":    product,
		"granted_at": grant.GrantedAt,
	})
}
