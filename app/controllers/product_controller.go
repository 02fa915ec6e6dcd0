package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/models"
	"github.com/waveforge/waveforge/app/repository"
	metrics "github.com/waveforge/waveforge/internal/pkg/metrics/counter"
	"github.com/waveforge/waveforge/internal/pkg/pricing"
)

// HandleListProducts returns active catalog products with review aggregates.
// Supports ?category=, ?featured=true and ?limit=.
func HandleListProducts(c *fiber.Ctx) error {
	filter := repository.ProductFilter{
		Status:       models.ProductStatusActive,
		Category:     c.Query("category"),
		FeaturedOnly: c.Query("featured") == "true",
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	productRepo := repository.GetGlobalFactory().GetProductRepository()
	rated, err := productRepo.ListWithRatings(filter)
	if err != nil {
		return internalError(c, "Failed to load products")
	}

	items := make([]fiber.Map, 0, len(rated))
	for _, entry := range rated {
		items = append(items, fiber.Map{
			"product":         entry.Product,
			"effective_price": pricing.EffectivePrice(entry.Product.Price, entry.Product.SalePrice),
			"average_rating":  entry.AverageRating,
			"review_count":    entry.ReviewCount,
		})
	}

	return c.JSON(fiber.Map{"products": items})
}

// HandleGetProduct returns one active product by slug with demos,
// relationships and reviews, and counts the view.
func HandleGetProduct(c *fiber.Ctx) error {
	slug := c.Params("slug")
	repos := repository.GetGlobalFactory()

	product, err := repos.GetProductRepository().GetActiveBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Product not found")
		}
		return internalError(c, "Failed to load product")
	}

	if err := metrics.AddProductView(product.ID); err != nil {
		log.Warnf("Failed to count view for product %s: %v", product.ID, err)
	}

	demos, err := repos.GetAudioDemoRepository().ListByProduct(product.ID, true)
	if err != nil {
		return internalError(c, "Failed to load audio demos")
	}

	relationships, err := repos.GetRelationshipRepository().ListByProduct(product.ID)
	if err != nil {
		return internalError(c, "Failed to load related products")
	}

	reviews, err := repos.GetProductRepository().GetReviews(product.ID)
	if err != nil {
		return internalError(c, "Failed to load reviews")
	}

	return c.JSON(fiber.Map{
		"product":         product,
		"effective_price": pricing.EffectivePrice(product.Price, product.SalePrice),
		"audio_demos":     demos,
		"relationships":   relationships,
		"reviews":         reviews,
	})
}
