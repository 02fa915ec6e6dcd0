package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/waveforge/waveforge/app/models"
	"github.com/waveforge/waveforge/app/repository"
	"github.com/waveforge/waveforge/internal/pkg/bundles"
	"github.com/waveforge/waveforge/internal/pkg/database"
	"github.com/waveforge/waveforge/internal/pkg/pricing"
)

const mosaicSize = 4

// HandleListBundles returns active bundles ordered for the storefront, each
// with its pricing map, product count and a small image mosaic.
func HandleListBundles(c *fiber.Ctx) error {
	bundleRepo := repository.GetGlobalFactory().GetBundleRepository()
	items, err := bundleRepo.ListByStatus(models.BundleStatusActive, c.Query("featured") == "true")
	if err != nil {
		return internalError(c, "Failed to load bundles")
	}

	entries := make([]fiber.Map, 0, len(items))
	for _, bundle := range items {
		entry := fiber.Map{"bundle": bundle}

		tiers, err := bundleRepo.GetTiers(bundle.ID)
		if err != nil {
			return internalError(c, "Failed to load bundle tiers")
		}
		priceMap := make(map[string]float64)
		for _, tier := range tiers {
			if tier.Active {
				priceMap[tier.SubscriptionType] = pricing.EffectivePrice(tier.Price, tier.SalePrice)
			}
		}
		entry["pricing"] = priceMap

		links, err := bundleRepo.GetLinks(bundle.ID)
		if err != nil {
			return internalError(c, "Failed to load bundle products")
		}
		entry["product_count"] = len(links)

		// mosaic: first few included products that have artwork
		mosaic := make([]fiber.Map, 0, mosaicSize)
		for _, link := range links {
			if len(mosaic) == mosaicSize {
				break
			}
			if link.Product == nil || link.Product.FeaturedImageURL == "" {
				continue
			}
			mosaic = append(mosaic, fiber.Map{
				"id":                 link.Product.ID,
				"name":               link.Product.Name,
				"slug":               link.Product.Slug,
				"featured_image_url": link.Product.FeaturedImageURL,
			})
		}
		entry["mosaic"] = mosaic

		entries = append(entries, entry)
	}

	return c.JSON(fiber.Map{"bundles": entries})
}

// HandleGetBundle returns the bundle detail page payload: the bundle with its
// filtered composition, combined value and per-tier savings.
func HandleGetBundle(c *fiber.Ctx) error {
	service := bundles.NewServiceFromDB(database.GetDB())

	detail, err := service.GetBundleDetail(c.UserContext(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, bundles.ErrBundleNotFound) {
			return notFound(c, "Bundle not found")
		}
		return internalError(c, "Failed to load bundle")
	}

	return c.JSON(detail)
}
