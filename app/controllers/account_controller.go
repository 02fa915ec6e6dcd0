package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/waveforge/waveforge/app/repository"
	"github.com/waveforge/waveforge/internal/pkg/env"
	"github.com/waveforge/waveforge/internal/pkg/security"
	"github.com/waveforge/waveforge/internal/pkg/usercontext"
)

const downloadTokenTTL = 15 * time.Minute

func downloadSecret() string {
	return env.GetEnv("DOWNLOAD_TOKEN_SECRET", "")
}

// HandleMyProducts lists the authenticated user's granted products with
// short-lived download tokens.
func HandleMyProducts(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "Login required")
	}

	grants, err := repository.GetGlobalFactory().GetGrantRepository().ListByUser(userCtx.UserID)
	if err != nil {
		return internalError(c, "Failed to load products")
	}

	secret := downloadSecret()
	items := make([]fiber.Map, 0, len(grants))
	for _, grant := range grants {
		if grant.IsRevoked() {
			continue
		}
		entry := fiber.Map{
			"product":    grant.Product,
			"source":     grant.Source,
			"granted_at": grant.GrantedAt,
		}
		if secret != "" {
			token, err := security.GenerateDownloadToken(grant.UserID.String(), grant.ProductID.String(), downloadTokenTTL, secret)
			if err == nil {
				entry["download_token"] = token
			}
		}
		items = append(items, entry)
	}

	return c.JSON(fiber.Map{"products": items})
}

// HandleDownloadProduct checks the signed token and redirects to the
// product's installer.
func HandleDownloadProduct(c *fiber.Ctx) error {
	secret := downloadSecret()
	if secret == "" {
		return jsonError(c, fiber.StatusServiceUnavailable, "unavailable", "Downloads are not configured")
	}

	claims, err := security.VerifyDownloadToken(c.Query("token"), secret)
	if err != nil {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "Invalid or expired download token")
	}
	if claims.ProductID != c.Params("id") {
		return jsonError(c, fiber.StatusForbidden, "forbidden", "Token does not match this product")
	}

	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	product, err := repository.GetGlobalFactory().GetProductRepository().GetByID(productID)
	if err != nil {
		return notFound(c, "Product not found")
	}
	if product.DownloadURL == "" {
		return notFound(c, "No installer is available for this product")
	}

	return c.Redirect(product.DownloadURL, fiber.StatusTemporaryRedirect)
}
