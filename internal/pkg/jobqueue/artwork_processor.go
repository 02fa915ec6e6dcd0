package jobqueue

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2/log"

	"github.com/waveforge/waveforge/internal/pkg/artwork"
	"github.com/waveforge/waveforge/internal/pkg/storage"
)

// processArtworkJob generates thumbnail and WebP renditions for uploaded
// product artwork and mirrors them to object storage when it is enabled.
func (q *Queue) processArtworkJob(ctx context.Context, job *Job) error {
	payload, err := ArtworkJobPayloadFromMap(job.Payload)
	if err != nil {
		return fmt.Errorf("invalid artwork payload: %w", err)
	}

	result, err := artwork.ProcessArtwork(payload.FilePath, payload.OutputDir, artwork.Options{})
	if err != nil {
		return err
	}

	client := storage.Get()
	if client == nil {
		return nil
	}

	for variant, path := range result.Variants {
		if variant == artwork.VariantOriginal {
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			log.Warnf("[JobQueue] Skipping artwork upload for %s: %v", path, err)
			continue
		}
		info, err := f.Stat()
		if err != nil {
			f.Close()
			continue
		}
		key := storage.ArtworkKey(payload.ProductID, string(variant), filepath.Base(path))
		if err := client.Upload(ctx, key, f, info.Size()); err != nil {
			f.Close()
			return err
		}
		f.Close()
	}

	return nil
}
