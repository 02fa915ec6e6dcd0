package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/models"
	"github.com/waveforge/waveforge/app/repository"
)

type audioDemoRequest struct {
	Title           string `json:"title"`
	Artist          string `json:"artist"`
	DemoURL         string `json:"demo_url"`
	DurationSeconds int    `json:"duration_seconds"`
	DisplayOrder    int    `json:"display_order"`
	Active          *bool  `json:"active"`
}

// HandleAdminListAudioDemos lists all demos of a product, including inactive
func HandleAdminListAudioDemos(c *fiber.Ctx) error {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	demos, err := repository.GetGlobalFactory().GetAudioDemoRepository().ListByProduct(productID, false)
	if err != nil {
		return internalError(c, "Failed to load audio demos")
	}
	return c.JSON(fiber.Map{"audio_demos": demos})
}

// HandleAdminCreateAudioDemo attaches a demo track to a product. The same
// URL cannot be added to a product twice.
func HandleAdminCreateAudioDemo(c *fiber.Ctx) error {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	var req audioDemoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	req.DemoURL = strings.TrimSpace(req.DemoURL)
	if req.Title == "" || req.DemoURL == "" {
		return badRequest(c, "Title and demo_url are required")
	}

	repos := repository.GetGlobalFactory()
	if _, err := repos.GetProductRepository().GetByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Product not found")
		}
		return internalError(c, "Failed to load product")
	}

	demoRepo := repos.GetAudioDemoRepository()
	if exists, err := demoRepo.ExistsForURL(productID, req.DemoURL); err != nil {
		return internalError(c, "Failed to check demo URL")
	} else if exists {
		return jsonError(c, fiber.StatusConflict, "conflict", "This demo URL is already attached to the product")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	demo := models.AudioDemo{
		ProductID:       productID,
		Title:           req.Title,
		Artist:          req.Artist,
		DemoURL:         req.DemoURL,
		DurationSeconds: req.DurationSeconds,
		DisplayOrder:    req.DisplayOrder,
		Active:          active,
	}
	if err := demoRepo.Create(&demo); err != nil {
		return internalError(c, "Failed to create audio demo")
	}
	return c.Status(fiber.StatusCreated).JSON(demo)
}

// HandleAdminUpdateAudioDemo edits a demo entry
func HandleAdminUpdateAudioDemo(c *fiber.Ctx) error {
	demoID, err := parseUUIDParam(c, "demoID")
	if err != nil {
		return badRequest(c, "Invalid demo id")
	}

	demoRepo := repository.GetGlobalFactory().GetAudioDemoRepository()
	demo, err := demoRepo.GetByID(demoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Audio demo not found")
		}
		return internalError(c, "Failed to load audio demo")
	}

	var req audioDemoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Title != "" {
		demo.Title = req.Title
	}
	demo.Artist = req.Artist
	if url := strings.TrimSpace(req.DemoURL); url != "" && url != demo.DemoURL {
		if exists, err := demoRepo.ExistsForURL(demo.ProductID, url); err != nil {
			return internalError(c, "Failed to check demo URL")
		} else if exists {
			return jsonError(c, fiber.StatusConflict, "conflict", "This demo URL is already attached to the product")
		}
		demo.DemoURL = url
	}
	if req.DurationSeconds > 0 {
		demo.DurationSeconds = req.DurationSeconds
	}
	demo.DisplayOrder = req.DisplayOrder
	if req.Active != nil {
		demo.Active = *req.Active
	}

	if err := demoRepo.Update(demo); err != nil {
		return internalError(c, "Failed to update audio demo")
	}
	return c.JSON(demo)
}

// HandleAdminDeleteAudioDemo removes a demo entry
func HandleAdminDeleteAudioDemo(c *fiber.Ctx) error {
	demoID, err := parseUUIDParam(c, "demoID")
	if err != nil {
		return badRequest(c, "Invalid demo id")
	}

	if err := repository.GetGlobalFactory().GetAudioDemoRepository().Delete(demoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Audio demo not found")
		}
		return internalError(c, "Failed to delete audio demo")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
