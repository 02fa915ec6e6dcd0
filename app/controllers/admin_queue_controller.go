package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/waveforge/waveforge/app/repository"
)

// HandleAdminListQueueKeys lists cache keys matching the known queue and
// counter patterns, for debugging stuck jobs.
func HandleAdminListQueueKeys(c *fiber.Ctx) error {
	queueRepo := repository.GetGlobalFactory().GetQueueRepository()

	keys, err := queueRepo.FindKeysByPatterns(repository.KnownQueuePatterns)
	if err != nil {
		return internalError(c, "Failed to list queue keys")
	}

	entries := make([]fiber.Map, 0, len(keys))
	for _, key := range keys {
		entry := fiber.Map{"key": key}
		if ttl, err := queueRepo.GetTTL(key); err == nil {
			entry["ttl_seconds"] = int64(ttl.Seconds())
		}
		if length, err := queueRepo.GetListLength(key); err == nil && length >= 0 {
			entry["length"] = length
		}
		entries = append(entries, entry)
	}

	return c.JSON(fiber.Map{"keys": entries})
}

// HandleAdminDeleteQueueKey removes a single cache key
func HandleAdminDeleteQueueKey(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return badRequest(c, "Query parameter key is required")
	}

	deleted, err := repository.GetGlobalFactory().GetQueueRepository().DeleteKey(key)
	if err != nil {
		return internalError(c, "Failed to delete key")
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}
