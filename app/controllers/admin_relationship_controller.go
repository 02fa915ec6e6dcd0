package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/models"
	"github.com/waveforge/waveforge/app/repository"
)

type relationshipRequest struct {
	RelatedProductID string `json:"related_product_id"`
	RelationshipType string `json:"relationship_type"`
	DisplayOrder     int    `json:"display_order"`
}

// HandleAdminListRelationships lists relationships of a product
func HandleAdminListRelationships(c *fiber.Ctx) error {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	rels, err := repository.GetGlobalFactory().GetRelationshipRepository().ListByProduct(productID)
	if err != nil {
		return internalError(c, "Failed to load relationships")
	}
	return c.JSON(fiber.Map{"relationships": rels})
}

// HandleAdminCreateRelationship links two products. A pair can only be linked
// once; self links are rejected.
func HandleAdminCreateRelationship(c *fiber.Ctx) error {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	var req relationshipRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	relatedID, err := uuid.Parse(req.RelatedProductID)
	if err != nil {
		return badRequest(c, "Invalid related product id")
	}
	if relatedID == productID {
		return badRequest(c, "A product cannot relate to itself")
	}
	if req.RelationshipType == "" {
		req.RelationshipType = models.RelationshipRelated
	}

	repos := repository.GetGlobalFactory()
	if _, err := repos.GetProductRepository().GetByID(relatedID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Related product not found")
		}
		return internalError(c, "Failed to load related product")
	}

	relRepo := repos.GetRelationshipRepository()
	if existing, err := relRepo.FindByPair(productID, relatedID); err == nil && existing != nil {
		return jsonError(c, fiber.StatusConflict, "conflict", "These products are already linked")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return internalError(c, "Failed to check relationship")
	}

	rel := models.ProductRelationship{
		ProductID:        productID,
		RelatedProductID: relatedID,
		RelationshipType: req.RelationshipType,
		DisplayOrder:     req.DisplayOrder,
	}
	if err := relRepo.Create(&rel); err != nil {
		return internalError(c, "Failed to create relationship")
	}
	return c.Status(fiber.StatusCreated).JSON(rel)
}

// HandleAdminUpdateRelationship changes type or ordering of a link
func HandleAdminUpdateRelationship(c *fiber.Ctx) error {
	relID, err := parseUUIDParam(c, "relID")
	if err != nil {
		return badRequest(c, "Invalid relationship id")
	}

	relRepo := repository.GetGlobalFactory().GetRelationshipRepository()
	rel, err := relRepo.GetByID(relID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Relationship not found")
		}
		return internalError(c, "Failed to load relationship")
	}

	var req relationshipRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.RelationshipType != "" {
		rel.RelationshipType = req.RelationshipType
	}
	rel.DisplayOrder = req.DisplayOrder

	if err := relRepo.Update(rel); err != nil {
		return internalError(c, "Failed to update relationship")
	}
	return c.JSON(rel)
}

// HandleAdminDeleteRelationship removes a product link
func HandleAdminDeleteRelationship(c *fiber.Ctx) error {
	relID, err := parseUUIDParam(c, "relID")
	if err != nil {
		return badRequest(c, "Invalid relationship id")
	}

	if err := repository.GetGlobalFactory().GetRelationshipRepository().Delete(relID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Relationship not found")
		}
		return internalError(c, "Failed to delete relationship")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
