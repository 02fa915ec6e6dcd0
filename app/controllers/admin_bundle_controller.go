package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/models"
	"github.com/waveforge/waveforge/app/repository"
)

// HandleAdminListBundles lists bundles in any status
func HandleAdminListBundles(c *fiber.Ctx) error {
	bundleRepo := repository.GetGlobalFactory().GetBundleRepository()
	items, err := bundleRepo.ListByStatus(c.Query("status"), false)
	if err != nil {
		return internalError(c, "Failed to load bundles")
	}
	return c.JSON(fiber.Map{"bundles": items})
}

// HandleAdminGetBundle returns one bundle with its tiers and composition
func HandleAdminGetBundle(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid bundle id")
	}

	bundleRepo := repository.GetGlobalFactory().GetBundleRepository()
	bundle, err := bundleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Bundle not found")
		}
		return internalError(c, "Failed to load bundle")
	}

	tiers, err := bundleRepo.GetTiers(id)
	if err != nil {
		return internalError(c, "Failed to load tiers")
	}
	links, err := bundleRepo.GetLinks(id)
	if err != nil {
		return internalError(c, "Failed to load composition")
	}

	return c.JSON(fiber.Map{
		"bundle":   bundle,
		"tiers":    tiers,
		"products": links,
	})
}

// HandleAdminCreateBundle creates a bundle in draft status unless specified
func HandleAdminCreateBundle(c *fiber.Ctx) error {
	var bundle models.Bundle
	if err := c.BodyParser(&bundle); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if bundle.Status == "" {
		bundle.Status = models.BundleStatusDraft
	}
	if err := bundle.Validate(); err != nil {
		return badRequest(c, "Invalid bundle: "+err.Error())
	}

	bundleRepo := repository.GetGlobalFactory().GetBundleRepository()
	if exists, err := bundleRepo.SlugExists(bundle.Slug); err != nil {
		return internalError(c, "Failed to check slug")
	} else if exists {
		return jsonError(c, fiber.StatusConflict, "conflict", "A bundle with this slug already exists")
	}

	if err := bundleRepo.Create(&bundle); err != nil {
		return internalError(c, "Failed to create bundle")
	}
	return c.Status(fiber.StatusCreated).JSON(bundle)
}

// HandleAdminUpdateBundle updates bundle fields
func HandleAdminUpdateBundle(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid bundle id")
	}

	bundleRepo := repository.GetGlobalFactory().GetBundleRepository()
	existing, err := bundleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Bundle not found")
		}
		return internalError(c, "Failed to load bundle")
	}

	var update models.Bundle
	if err := c.BodyParser(&update); err != nil {
		return badRequest(c, "Invalid request body")
	}
	update.ID = existing.ID
	update.CreatedAt = existing.CreatedAt
	update.Tiers = nil
	if err := update.Validate(); err != nil {
		return badRequest(c, "Invalid bundle: "+err.Error())
	}

	if exists, err := bundleRepo.SlugExistsExceptID(update.Slug, existing.ID); err != nil {
		return internalError(c, "Failed to check slug")
	} else if exists {
		return jsonError(c, fiber.StatusConflict, "conflict", "A bundle with this slug already exists")
	}

	if err := bundleRepo.Update(&update); err != nil {
		return internalError(c, "Failed to update bundle")
	}
	return c.JSON(update)
}

// HandleAdminArchiveBundle archives a bundle. Archived bundles return 404 on
// the public detail endpoint, same as drafts.
func HandleAdminArchiveBundle(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid bundle id")
	}

	if err := repository.GetGlobalFactory().GetBundleRepository().Archive(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Bundle not found")
		}
		return internalError(c, "Failed to archive bundle")
	}
	return c.JSON(fiber.Map{"status": models.BundleStatusArchived})
}
