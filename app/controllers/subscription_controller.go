package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/repository"
	"github.com/waveforge/waveforge/internal/pkg/payments"
	"github.com/waveforge/waveforge/internal/pkg/usercontext"
)

// HandleListSubscribedBundles returns the user's subscriptions matched to
// bundle tiers by provider price reference. Only entitling subscriptions
// unlock bundle contents.
func HandleListSubscribedBundles(c *fiber.Ctx) error {
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

	subs, err := client.ListSubscriptions(c.UserContext(), customerID)
	if err != nil {
		return internalError(c, "Failed to load subscriptions")
	}

	tiers, err := repository.GetGlobalFactory().GetBundleRepository().ListActiveTiersWithBundles()
	if err != nil {
		return internalError(c, "Failed to load bundle tiers")
	}

	tiersByPriceID := make(map[string]repository.TierWithBundle, len(tiers))
	for _, tw := range tiers {
		if tw.Tier.ProviderPrice != "" {
			tiersByPriceID[tw.Tier.ProviderPrice] = tw
		}
	}

	items := make([]fiber.Map, 0, len(subs))
	for _, sub := range subs {
		entry := fiber.Map{
			"subscription": sub,
			"entitling":    sub.IsEntitling(),
		}
		for _, priceID := range sub.PriceIDs {
			if tw, ok := tiersByPriceID[priceID]; ok {
				entry["bundle"] = tw.Bundle
				entry["tier"] = tw.Tier
				break
			}
		}
		items = append(items, entry)
	}

	return c.JSON(fiber.Map{"subscriptions": items})
}

// HandleReactivateSubscription clears a pending cancellation
func HandleReactivateSubscription(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "Login required")
	}

	client := payments.Get()
	if client == nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "unavailable", "Payments are not configured")
	}

	subscriptionID := c.Params("id")
	if subscriptionID == "" {
		return badRequest(c, "Missing subscription id")
	}

	// re-list the customer's subscriptions so one user cannot reactivate
	// another user's subscription by id
	customerID, err := customerIDForUser(c)
	if err != nil {
		return internalError(c, "Failed to load user")
	}
	subs, err := client.ListSubscriptions(c.UserContext(), customerID)
	if err != nil {
		return internalError(c, "Failed to load subscriptions")
	}
	owned := false
	for _, sub := range subs {
		if sub.ID == subscriptionID {
			owned = true
			break
		}
	}
	if !owned {
		return notFound(c, "Subscription not found")
	}

	sub, err := client.Reactivate(c.UserContext(), subscriptionID)
	if err != nil {
		return internalError(c, "Failed to reactivate subscription")
	}

	return c.JSON(fiber.Map{"subscription": sub})
}
