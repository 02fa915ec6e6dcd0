package artwork

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2/log"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
	"image"
)

const (
	// SmallThumbnailSize is the width of card thumbnails in the catalog grid
	SmallThumbnailSize = 300
	// MediumThumbnailSize is the width of the product page hero image
	MediumThumbnailSize = 800

	// WebPQuality is the lossy quality used for all WebP variants
	WebPQuality = 85
)

// Variant names an artwork rendition on disk and in object storage
type Variant string

const (
	VariantOriginal    Variant = "original"
	VariantSmall       Variant = "small"
	VariantMedium      Variant = "medium"
	VariantSmallWebP   Variant = "small_webp"
	VariantMediumWebP  Variant = "medium_webp"
	VariantFullWebP    Variant = "full_webp"
)

// Result lists the files produced for one piece of artwork, keyed by variant
type Result struct {
	Variants map[Variant]string
}

// Options controls which renditions ProcessArtwork generates
type Options struct {
	// SkipWebP disables WebP encoding, e.g. in environments without libwebp
	SkipWebP bool
}

// ProcessArtwork reads the uploaded artwork and writes resized and WebP
// renditions next to it in outputDir. The original file is left untouched.
// Orientation from camera metadata is applied before resizing.
func ProcessArtwork(originalPath, outputDir string, opts Options) (*Result, error) {
	img, err := imaging.Open(originalPath, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open artwork %s: %w", originalPath, err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(originalPath), filepath.Ext(originalPath))
	ext := strings.ToLower(filepath.Ext(originalPath))

	result := &Result{Variants: map[Variant]string{
		VariantOriginal: originalPath,
	}}

	small := imaging.Resize(img, SmallThumbnailSize, 0, imaging.Lanczos)
	smallPath := filepath.Join(outputDir, base+"_small"+ext)
	if err := imaging.Save(small, smallPath); err != nil {
		return nil, fmt.Errorf("save small thumbnail: %w", err)
	}
	result.Variants[VariantSmall] = smallPath

	medium := imaging.Resize(img, MediumThumbnailSize, 0, imaging.Lanczos)
	mediumPath := filepath.Join(outputDir, base+"_medium"+ext)
	if err := imaging.Save(medium, mediumPath); err != nil {
		return nil, fmt.Errorf("save medium thumbnail: %w", err)
	}
	result.Variants[VariantMedium] = mediumPath

	if opts.SkipWebP {
		return result, nil
	}

	webpTargets := []struct {
		variant Variant
		img     image.Image
		suffix  string
	}{
		{VariantSmallWebP, small, "_small"},
		{VariantMediumWebP, medium, "_medium"},
		{VariantFullWebP, img, ""},
	}
	for _, target := range webpTargets {
		path := filepath.Join(outputDir, base+target.suffix+".webp")
		if err := saveWebP(target.img, path); err != nil {
			// WebP is an optimization, the resized originals already exist
			log.Warnf("[Artwork] WebP encode failed for %s: %v", path, err)
			continue
		}
		result.Variants[target.variant] = path
	}

	return result, nil
}

// saveWebP writes an image as lossy WebP
func saveWebP(img image.Image, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	output, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("error creating WebP file: %w", err)
	}
	defer output.Close()

	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, WebPQuality)
	if err != nil {
		return fmt.Errorf("error creating encoder options: %w", err)
	}

	if err := webp.Encode(output, img, options); err != nil {
		return fmt.Errorf("error encoding WebP image: %w", err)
	}

	return nil
}
