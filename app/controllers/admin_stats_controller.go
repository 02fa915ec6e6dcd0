package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/waveforge/waveforge/app/repository"
	"github.com/waveforge/waveforge/internal/pkg/jobqueue"
)

// HandleAdminStats returns back-office dashboard counts and queue health
func HandleAdminStats(c *fiber.Ctx) error {
	repos := repository.GetGlobalFactory()

	userCount, err := repos.GetUserRepository().Count()
	if err != nil {
		return internalError(c, "Failed to count users")
	}
	productCount, err := repos.GetProductRepository().Count()
	if err != nil {
		return internalError(c, "Failed to count products")
	}
	bundleCount, err := repos.GetBundleRepository().Count()
	if err != nil {
		return internalError(c, "Failed to count bundles")
	}
	grantCount, err := repos.GetGrantRepository().Count()
	if err != nil {
		return internalError(c, "Failed to count grants")
	}

	queue := jobqueue.GetManager().GetQueue()
	ctx := c.UserContext()
	pending, _ := queue.GetQueueSize(ctx)
	processing, _ := queue.GetProcessingSize(ctx)
	jobStats, _ := queue.GetJobStats(ctx)

	return c.JSON(fiber.Map{
		"users":    userCount,
		"products": productCount,
		"bundles":  bundleCount,
		"grants":   grantCount,
		"queue": fiber.Map{
			"pending":    pending,
			"processing": processing,
			"stats":      jobStats,
		},
	})
}
