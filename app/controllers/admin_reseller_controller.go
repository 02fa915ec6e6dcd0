package controllers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/models"
	"github.com/waveforge/waveforge/app/repository"
	"github.com/waveforge/waveforge/internal/pkg/codes"
)

const maxCodeBatch = 1000

// HandleAdminListResellers lists distribution partners
func HandleAdminListResellers(c *fiber.Ctx) error {
	resellers, err := repository.GetGlobalFactory().GetResellerRepository().List(c.Query("active") == "true")
	if err != nil {
		return internalError(c, "Failed to load resellers")
	}
	return c.JSON(fiber.Map{"resellers": resellers})
}

// HandleAdminCreateReseller registers a new distribution partner
func HandleAdminCreateReseller(c *fiber.Ctx) error {
	var reseller models.Reseller
	if err := c.BodyParser(&reseller); err != nil {
		return badRequest(c, "Invalid request body")
	}
	reseller.Active = true
	if err := reseller.Validate(); err != nil {
		return badRequest(c, "Invalid reseller: "+err.Error())
	}

	if err := repository.GetGlobalFactory().GetResellerRepository().Create(&reseller); err != nil {
		return internalError(c, "Failed to create reseller")
	}
	return c.Status(fiber.StatusCreated).JSON(reseller)
}

// HandleAdminUpdateReseller edits a partner
func HandleAdminUpdateReseller(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid reseller id")
	}

	resellerRepo := repository.GetGlobalFactory().GetResellerRepository()
	existing, err := resellerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Reseller not found")
		}
		return internalError(c, "Failed to load reseller")
	}

	var update models.Reseller
	if err := c.BodyParser(&update); err != nil {
		return badRequest(c, "Invalid request body")
	}
	update.ID = existing.ID
	update.CreatedAt = existing.CreatedAt
	if err := update.Validate(); err != nil {
		return badRequest(c, "Invalid reseller: "+err.Error())
	}

	if err := resellerRepo.Update(&update); err != nil {
		return internalError(c, "Failed to update reseller")
	}
	return c.JSON(update)
}

// HandleAdminDeleteReseller soft-deletes a partner; issued codes stay valid
func HandleAdminDeleteReseller(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid reseller id")
	}

	if err := repository.GetGlobalFactory().GetResellerRepository().Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Reseller not found")
		}
		return internalError(c, "Failed to delete reseller")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type generateCodesRequest struct {
	ProductID string `json:"product_id"`
	Count     int    `json:"count"`
}

// HandleAdminGenerateCodes creates a batch of single-use redemption codes for
// one product, issued through the given reseller.
func HandleAdminGenerateCodes(c *fiber.Ctx) error {
	resellerID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid reseller id")
	}

	var req generateCodesRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Count <= 0 || req.Count > maxCodeBatch {
		return badRequest(c, "Count must be between 1 and 1000")
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	repos := repository.GetGlobalFactory()
	if _, err := repos.GetResellerRepository().GetByID(resellerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Reseller not found")
		}
		return internalError(c, "Failed to load reseller")
	}
	if _, err := repos.GetProductRepository().GetByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Product not found")
		}
		return internalError(c, "Failed to load product")
	}

	generated, err := codes.GenerateBatch(req.Count)
	if err != nil {
		return internalError(c, "Failed to generate codes")
	}

	batch := make([]*models.ResellerCode, 0, len(generated))
	for _, code := range generated {
		batch = append(batch, &models.ResellerCode{
			ResellerID: resellerID,
			ProductID:  productID,
			Code:       code,
		})
	}
	if err := repos.GetResellerRepository().CreateCodes(batch); err != nil {
		return internalError(c, "Failed to store codes")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"count": len(batch),
		"codes": batch,
	})
}

// HandleAdminListCodes lists a reseller's codes; ?redeemed=true includes used
// ones
func HandleAdminListCodes(c *fiber.Ctx) error {
	resellerID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid reseller id")
	}

	items, err := repository.GetGlobalFactory().GetResellerRepository().ListCodes(resellerID, c.Query("redeemed") == "true")
	if err != nil {
		return internalError(c, "Failed to load codes")
	}
	return c.JSON(fiber.Map{"codes": items})
}

// HandleAdminExportCodesCSV streams a reseller's codes as a CSV download,
// formatted in dash-separated blocks for printing on cards.
func HandleAdminExportCodesCSV(c *fiber.Ctx) error {
	resellerID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid reseller id")
	}

	items, err := repository.GetGlobalFactory().GetResellerRepository().ListCodes(resellerID, true)
	if err != nil {
		return internalError(c, "Failed to load codes")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"code", "product_id", "created_at", "redeemed", "redeemed_at"})
	for _, item := range items {
		redeemedAt := ""
		if item.RedeemedAt != nil {
			redeemedAt = item.RedeemedAt.UTC().Format(time.RFC3339)
		}
		redeemed := "no"
		if item.IsRedeemed() {
			redeemed = "yes"
		}
		_ = w.Write([]string{
			codes.Format(item.Code),
			item.ProductID.String(),
			item.CreatedAt.UTC().Format(time.RFC3339),
			redeemed,
			redeemedAt,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return internalError(c, "Failed to write CSV")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="codes-`+resellerID.String()+`.csv"`)
	return c.Send(buf.Bytes())
}
