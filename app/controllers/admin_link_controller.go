package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/models"
	"github.com/waveforge/waveforge/app/repository"
)

type linkRequest struct {
	ProductID    string `json:"product_id"`
	DisplayOrder *int   `json:"display_order"`
}

type reorderRequest struct {
	DisplayOrder int `json:"display_order"`
}

// HandleAdminAddBundleProduct links a product into a bundle's composition.
// New links go to the end of the display order unless one is given.
func HandleAdminAddBundleProduct(c *fiber.Ctx) error {
	bundleID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid bundle id")
	}

	var req linkRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	repos := repository.GetGlobalFactory()
	bundleRepo := repos.GetBundleRepository()

	if _, err := bundleRepo.GetByID(bundleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Bundle not found")
		}
		return internalError(c, "Failed to load bundle")
	}
	if _, err := repos.GetProductRepository().GetByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Product not found")
		}
		return internalError(c, "Failed to load product")
	}

	if exists, err := bundleRepo.LinkExists(bundleID, productID); err != nil {
		return internalError(c, "Failed to check composition")
	} else if exists {
		return jsonError(c, fiber.StatusConflict, "conflict", "Product is already part of this bundle")
	}

	displayOrder := 0
	if req.DisplayOrder != nil {
		displayOrder = *req.DisplayOrder
	} else {
		next, err := bundleRepo.NextDisplayOrder(bundleID)
		if err != nil {
			return internalError(c, "Failed to determine display order")
		}
		displayOrder = next
	}

	link := models.BundleProduct{
		BundleID:     bundleID,
		ProductID:    productID,
		DisplayOrder: displayOrder,
	}
	if err := bundleRepo.AddLink(&link); err != nil {
		return internalError(c, "Failed to add product to bundle")
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

// HandleAdminRemoveBundleProduct unlinks a product from a bundle
func HandleAdminRemoveBundleProduct(c *fiber.Ctx) error {
	bundleID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid bundle id")
	}
	productID, err := parseUUIDParam(c, "productID")
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	bundleRepo := repository.GetGlobalFactory().GetBundleRepository()
	if exists, err := bundleRepo.LinkExists(bundleID, productID); err != nil {
		return internalError(c, "Failed to check composition")
	} else if !exists {
		return notFound(c, "Product is not part of this bundle")
	}

	if err := bundleRepo.RemoveLink(bundleID, productID); err != nil {
		return internalError(c, "Failed to remove product from bundle")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAdminReorderBundleProduct moves a composition entry to a new position
func HandleAdminReorderBundleProduct(c *fiber.Ctx) error {
	linkID, err := parseUUIDParam(c, "linkID")
	if err != nil {
		return badRequest(c, "Invalid link id")
	}

	var req reorderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := repository.GetGlobalFactory().GetBundleRepository().ReorderLink(linkID, req.DisplayOrder); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Composition entry not found")
		}
		return internalError(c, "Failed to reorder composition")
	}
	return c.JSON(fiber.Map{"display_order": req.DisplayOrder})
}
