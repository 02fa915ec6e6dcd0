package controllers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/models"
	"github.com/waveforge/waveforge/app/repository"
	"github.com/waveforge/waveforge/internal/pkg/payments"
	"github.com/waveforge/waveforge/internal/pkg/pricing"
)

type tierRequest struct {
	SubscriptionType string   `json:"subscription_type"`
	Price            *float64 `json:"price"`
	SalePrice        *float64 `json:"sale_price"`
	Active           *bool    `json:"active"`
}

// syncTierWithProvider mirrors a tier's product and price onto the payments
// platform and stores the returned references. Best effort, checkout just
// falls back to the previous price refs on failure.
func syncTierWithProvider(ctx context.Context, bundle *models.Bundle, tier *models.BundleSubscriptionTier) {
	client := payments.Get()
	if client == nil {
		return
	}

	name := bundle.Name + " (" + tier.SubscriptionType + ")"
	providerProductID, err := client.SyncProduct(ctx, tier.ProviderProduct, name, bundle.ShortDescription)
	if err != nil {
		log.Warnf("[Payments] failed to sync tier product for bundle %s: %v", bundle.ID, err)
		return
	}
	tier.ProviderProduct = providerProductID

	amount := pricing.EffectivePrice(tier.Price, tier.SalePrice)
	var priceID string
	switch tier.SubscriptionType {
	case models.SubscriptionMonthly:
		priceID, err = client.SyncRecurringPrice(ctx, providerProductID, amount, "month")
	case models.SubscriptionAnnual:
		priceID, err = client.SyncRecurringPrice(ctx, providerProductID, amount, "year")
	default: // lifetime is a one-time charge
		priceID, err = client.SyncPrice(ctx, providerProductID, amount)
	}
	if err != nil {
		log.Warnf("[Payments] failed to sync tier price for bundle %s: %v", bundle.ID, err)
		return
	}
	tier.ProviderPrice = priceID

	if err := repository.GetGlobalFactory().GetBundleRepository().UpdateTier(tier); err != nil {
		log.Warnf("[Payments] failed to store provider refs for tier %s: %v", tier.ID, err)
	}
}

// HandleAdminListTiers lists all tiers of a bundle, active or not
func HandleAdminListTiers(c *fiber.Ctx) error {
	bundleID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid bundle id")
	}

	tiers, err := repository.GetGlobalFactory().GetBundleRepository().GetTiers(bundleID)
	if err != nil {
		return internalError(c, "Failed to load tiers")
	}
	return c.JSON(fiber.Map{"tiers": tiers})
}

// HandleAdminCreateTier adds a subscription tier to a bundle. Creating a
// second active tier of the same type is rejected so pricing stays
// unambiguous.
func HandleAdminCreateTier(c *fiber.Ctx) error {
	bundleID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid bundle id")
	}

	var req tierRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if !models.IsValidSubscriptionType(req.SubscriptionType) {
		return badRequest(c, "subscription_type must be monthly, annual or lifetime")
	}
	if req.Price == nil || *req.Price < 0 {
		return badRequest(c, "price is required and must not be negative")
	}

	bundleRepo := repository.GetGlobalFactory().GetBundleRepository()
	bundle, err := bundleRepo.GetByID(bundleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Bundle not found")
		}
		return internalError(c, "Failed to load bundle")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	if active {
		existing, err := bundleRepo.GetTiers(bundleID)
		if err != nil {
			return internalError(c, "Failed to load tiers")
		}
		for _, t := range existing {
			if t.Active && t.SubscriptionType == req.SubscriptionType {
				return jsonError(c, fiber.StatusConflict, "conflict", "An active "+req.SubscriptionType+" tier already exists for this bundle")
			}
		}
	}

	tier := models.BundleSubscriptionTier{
		BundleID:         bundleID,
		SubscriptionType: req.SubscriptionType,
		Price:            req.Price,
		SalePrice:        req.SalePrice,
		Active:           active,
	}
	if err := bundleRepo.CreateTier(&tier); err != nil {
		return internalError(c, "Failed to create tier")
	}

	syncTierWithProvider(c.UserContext(), bundle, &tier)

	return c.Status(fiber.StatusCreated).JSON(tier)
}

// HandleAdminUpdateTier updates price, sale price or active flag of a tier
func HandleAdminUpdateTier(c *fiber.Ctx) error {
	tierID, err := parseUUIDParam(c, "tierID")
	if err != nil {
		return badRequest(c, "Invalid tier id")
	}

	bundleRepo := repository.GetGlobalFactory().GetBundleRepository()
	tier, err := bundleRepo.GetTierByID(tierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Tier not found")
		}
		return internalError(c, "Failed to load tier")
	}

	var req tierRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.SubscriptionType != "" && !models.IsValidSubscriptionType(req.SubscriptionType) {
		return badRequest(c, "subscription_type must be monthly, annual or lifetime")
	}

	if req.SubscriptionType != "" {
		tier.SubscriptionType = req.SubscriptionType
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return badRequest(c, "price must not be negative")
		}
		tier.Price = req.Price
	}
	tier.SalePrice = req.SalePrice
	if req.Active != nil {
		tier.Active = *req.Active
	}

	if tier.Active {
		siblings, err := bundleRepo.GetTiers(tier.BundleID)
		if err != nil {
			return internalError(c, "Failed to load tiers")
		}
		for _, t := range siblings {
			if t.ID != tier.ID && t.Active && t.SubscriptionType == tier.SubscriptionType {
				return jsonError(c, fiber.StatusConflict, "conflict", "An active "+tier.SubscriptionType+" tier already exists for this bundle")
			}
		}
	}

	if err := bundleRepo.UpdateTier(tier); err != nil {
		return internalError(c, "Failed to update tier")
	}

	if bundle, err := bundleRepo.GetByID(tier.BundleID); err == nil {
		syncTierWithProvider(c.UserContext(), bundle, tier)
	}

	return c.JSON(tier)
}

// HandleAdminDeleteTier removes a tier
func HandleAdminDeleteTier(c *fiber.Ctx) error {
	tierID, err := parseUUIDParam(c, "tierID")
	if err != nil {
		return badRequest(c, "Invalid tier id")
	}

	if err := repository.GetGlobalFactory().GetBundleRepository().DeleteTier(tierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Tier not found")
		}
		return internalError(c, "Failed to delete tier")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
