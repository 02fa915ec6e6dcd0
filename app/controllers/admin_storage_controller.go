package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/waveforge/waveforge/internal/pkg/storage"
)

func storageClient(c *fiber.Ctx) (*storage.Client, error) {
	client := storage.Get()
	if client == nil {
		return nil, jsonError(c, fiber.StatusServiceUnavailable, "unavailable", "Object storage is not configured")
	}
	return client, nil
}

// HandleAdminListBuckets lists buckets visible to the storage credentials
func HandleAdminListBuckets(c *fiber.Ctx) error {
	client, errResp := storageClient(c)
	if client == nil {
		return errResp
	}

	buckets, err := client.ListBuckets(c.UserContext())
	if err != nil {
		return internalError(c, "Failed to list buckets")
	}
	return c.JSON(fiber.Map{"buckets": buckets})
}

type createBucketRequest struct {
	Name string `json:"name"`
}

// HandleAdminCreateBucket creates a bucket
func HandleAdminCreateBucket(c *fiber.Ctx) error {
	client, errResp := storageClient(c)
	if client == nil {
		return errResp
	}

	var req createBucketRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		return badRequest(c, "Bucket name is required")
	}

	if err := client.CreateBucket(c.UserContext(), req.Name); err != nil {
		return internalError(c, "Failed to create bucket")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"name": req.Name})
}

// HandleAdminListObjects lists objects under ?prefix= in ?bucket=
func HandleAdminListObjects(c *fiber.Ctx) error {
	client, errResp := storageClient(c)
	if client == nil {
		return errResp
	}

	objects, err := client.ListObjects(c.UserContext(), c.Query("bucket"), c.Query("prefix"), int32(c.QueryInt("limit", 100)))
	if err != nil {
		return internalError(c, "Failed to list objects")
	}
	return c.JSON(fiber.Map{"objects": objects})
}
