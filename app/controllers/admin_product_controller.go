package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/models"
	"github.com/waveforge/waveforge/app/repository"
	"github.com/waveforge/waveforge/internal/pkg/jobqueue"
)

// HandleAdminListProducts lists products in any status
func HandleAdminListProducts(c *fiber.Ctx) error {
	filter := repository.ProductFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	products, err := repository.GetGlobalFactory().GetProductRepository().List(filter)
	if err != nil {
		return internalError(c, "Failed to load products")
	}
	return c.JSON(fiber.Map{"products": products})
}

// HandleAdminGetProduct returns one product regardless of status
func HandleAdminGetProduct(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	product, err := repository.GetGlobalFactory().GetProductRepository().GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Product not found")
		}
		return internalError(c, "Failed to load product")
	}
	return c.JSON(product)
}

// HandleAdminCreateProduct creates a product and schedules provider sync
func HandleAdminCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if product.Status == "" {
		product.Status = models.ProductStatusDraft
	}
	if err := product.Validate(); err != nil {
		return badRequest(c, "Invalid product: "+err.Error())
	}

	productRepo := repository.GetGlobalFactory().GetProductRepository()
	if exists, err := productRepo.SlugExists(product.Slug); err != nil {
		return internalError(c, "Failed to check slug")
	} else if exists {
		return jsonError(c, fiber.StatusConflict, "conflict", "A product with this slug already exists")
	}

	if err := productRepo.Create(&product); err != nil {
		return internalError(c, "Failed to create product")
	}

	enqueueProviderSync(product.ID.String())
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleAdminUpdateProduct updates a product and schedules provider sync
func HandleAdminUpdateProduct(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	productRepo := repository.GetGlobalFactory().GetProductRepository()
	existing, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Product not found")
		}
		return internalError(c, "Failed to load product")
	}

	var update models.Product
	if err := c.BodyParser(&update); err != nil {
		return badRequest(c, "Invalid request body")
	}
	update.ID = existing.ID
	update.ProviderProduct = existing.ProviderProduct
	update.ProviderPrice = existing.ProviderPrice
	update.CreatedAt = existing.CreatedAt
	if err := update.Validate(); err != nil {
		return badRequest(c, "Invalid product: "+err.Error())
	}

	if exists, err := productRepo.SlugExistsExceptID(update.Slug, existing.ID); err != nil {
		return internalError(c, "Failed to check slug")
	} else if exists {
		return jsonError(c, fiber.StatusConflict, "conflict", "A product with this slug already exists")
	}

	if err := productRepo.Update(&update); err != nil {
		return internalError(c, "Failed to update product")
	}

	enqueueProviderSync(update.ID.String())
	return c.JSON(update)
}

// HandleAdminArchiveProduct archives a product; archived products disappear
// from the storefront but keep their purchase history.
func HandleAdminArchiveProduct(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	if err := repository.GetGlobalFactory().GetProductRepository().Archive(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Product not found")
		}
		return internalError(c, "Failed to archive product")
	}
	return c.JSON(fiber.Map{"status": models.ProductStatusArchived})
}

func enqueueProviderSync(productID string) {
	payload := jobqueue.ProviderSyncJobPayload{ProductID: productID}
	if _, err := jobqueue.GetManager().GetQueue().EnqueueJob(jobqueue.JobTypeProviderSync, payload.ToMap()); err != nil {
		log.Warnf("Failed to enqueue provider sync for product %s: %v", productID, err)
	}
}
