package controllers

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/waveforge/waveforge/app/repository"
	"github.com/waveforge/waveforge/internal/pkg/jobqueue"
	"github.com/waveforge/waveforge/internal/pkg/storage"
	"github.com/waveforge/waveforge/internal/pkg/upload"
)

const sniffLen = 512

// readUploadHead opens the multipart file and returns its first bytes for
// content sniffing along with a fresh reader positioned at the start.
func readUploadHead(c *fiber.Ctx) (string, []byte, io.ReadSeekCloser, int64, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", nil, nil, 0, err
	}

	f, err := fileHeader.Open()
	if err != nil {
		return "", nil, nil, 0, err
	}

	head := make([]byte, sniffLen)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		f.Close()
		return "", nil, nil, 0, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return "", nil, nil, 0, err
	}

	return fileHeader.Filename, head[:n], f, fileHeader.Size, nil
}

// HandleAdminUploadArtwork accepts a product artwork image, validates it and
// queues resize plus WebP generation. Variants land in object storage.
func HandleAdminUploadArtwork(c *fiber.Ctx) error {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	productRepo := repository.GetGlobalFactory().GetProductRepository()
	if _, err := productRepo.GetByID(productID); err != nil {
		return notFound(c, "Product not found")
	}

	filename, head, file, _, err := readUploadHead(c)
	if err != nil {
		return badRequest(c, "Missing or unreadable file upload")
	}
	defer file.Close()

	if _, err := upload.ValidateBySniff(upload.KindArtwork, filename, head); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "invalid_file", err.Error())
	}

	workDir, err := os.MkdirTemp("", "artwork-")
	if err != nil {
		return internalError(c, "Failed to prepare working directory")
	}

	localPath := filepath.Join(workDir, filepath.Base(filename))
	dst, err := os.Create(localPath)
	if err != nil {
		return internalError(c, "Failed to store upload")
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		return internalError(c, "Failed to store upload")
	}
	dst.Close()

	payload := jobqueue.ArtworkJobPayload{
		ProductID: productID.String(),
		FilePath:  localPath,
		OutputDir: workDir,
	}
	job, err := jobqueue.GetManager().GetQueue().EnqueueJob(jobqueue.JobTypeArtworkProcessing, payload.ToMap())
	if err != nil {
		log.Errorf("[Upload] failed to enqueue artwork job for product %s: %v", productID, err)
		return internalError(c, "Failed to queue artwork processing")
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"job_id":     job.ID,
		"product_id": productID,
	})
}

// HandleAdminUploadInstaller streams a product installer into object storage.
// The object key is returned so the admin can point download_url at it.
func HandleAdminUploadInstaller(c *fiber.Ctx) error {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid product id")
	}

	productRepo := repository.GetGlobalFactory().GetProductRepository()
	product, err := productRepo.GetByID(productID)
	if err != nil {
		return notFound(c, "Product not found")
	}

	client, errResp := storageClient(c)
	if client == nil {
		return errResp
	}

	filename, head, file, size, err := readUploadHead(c)
	if err != nil {
		return badRequest(c, "Missing or unreadable file upload")
	}
	defer file.Close()

	if _, err := upload.ValidateBySniff(upload.KindInstaller, filename, head); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "invalid_file", err.Error())
	}

	version := c.FormValue("version", product.Version)
	if version == "" {
		version = "latest"
	}

	key := storage.InstallerKey(productID.String(), version, filepath.Base(filename))
	if err := client.Upload(c.UserContext(), key, file, size); err != nil {
		log.Errorf("[Upload] failed to upload installer for product %s: %v", productID, err)
		return internalError(c, "Failed to upload installer")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"product_id": productID,
		"key":        key,
		"version":    version,
	})
}
