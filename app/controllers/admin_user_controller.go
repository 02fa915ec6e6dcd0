package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/models"
	"github.com/waveforge/waveforge/app/repository"
)

// HandleAdminSearchUsers searches accounts by name or email fragment
func HandleAdminSearchUsers(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return badRequest(c, "Query parameter q is required")
	}

	users, err := repository.GetGlobalFactory().GetUserRepository().Search(query)
	if err != nil {
		return internalError(c, "Failed to search users")
	}
	return c.JSON(fiber.Map{"users": users})
}

// HandleAdminListUserGrants lists a user's product grants
func HandleAdminListUserGrants(c *fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	grants, err := repository.GetGlobalFactory().GetGrantRepository().ListByUser(userID)
	if err != nil {
		return internalError(c, "Failed to load grants")
	}
	return c.JSON(fiber.Map{"grants": grants})
}

type grantRequest struct {
	ProductID string `json:"product_id"`
}

// HandleAdminCreateGrant manually grants a product to a user, e.g. for
// support cases or NFR copies.
func HandleAdminCreateGrant(c *fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	var req grantRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	repos := repository.GetGlobalFactory()
	if _, err := repos.GetUserRepository().GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "User not found")
		}
		return internalError(c, "Failed to load user")
	}
	if _, err := repos.GetProductRepository().GetByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Product not found")
		}
		return internalError(c, "Failed to load product")
	}

	grantRepo := repos.GetGrantRepository()
	if existing, err := grantRepo.GetByUserAndProduct(userID, productID); err == nil && existing != nil && !existing.IsRevoked() {
		return jsonError(c, fiber.StatusConflict, "conflict", "User already owns this product")
	}

	grant := &models.ProductGrant{
		UserID:    userID,
		ProductID: productID,
		Source:    models.GrantSourceAdmin,
	}
	if err := grantRepo.Create(grant); err != nil {
		return internalError(c, "Failed to create grant")
	}
	return c.Status(fiber.StatusCreated).JSON(grant)
}

// HandleAdminRevokeGrant withdraws a grant without deleting its history
func HandleAdminRevokeGrant(c *fiber.Ctx) error {
	grantID, err := parseUUIDParam(c, "grantID")
	if err != nil {
		return badRequest(c, "Invalid grant id")
	}

	if err := repository.GetGlobalFactory().GetGrantRepository().Revoke(grantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Grant not found")
		}
		return internalError(c, "Failed to revoke grant")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
