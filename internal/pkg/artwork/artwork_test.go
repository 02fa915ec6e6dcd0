package artwork

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, dir string, width, height int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	path := filepath.Join(dir, "cover.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestProcessArtwork(t *testing.T) {
	dir := t.TempDir()
	original := writeTestPNG(t, dir, 1200, 900)

	outputDir := filepath.Join(dir, "variants")
	result, err := ProcessArtwork(original, outputDir, Options{SkipWebP: true})
	require.NoError(t, err)

	assert.Equal(t, original, result.Variants[VariantOriginal])

	smallPath, ok := result.Variants[VariantSmall]
	require.True(t, ok)
	assertImageWidth(t, smallPath, SmallThumbnailSize)

	mediumPath, ok := result.Variants[VariantMedium]
	require.True(t, ok)
	assertImageWidth(t, mediumPath, MediumThumbnailSize)

	_, hasWebP := result.Variants[VariantFullWebP]
	assert.False(t, hasWebP)
}

func TestProcessArtworkMissingFile(t *testing.T) {
	_, err := ProcessArtwork(filepath.Join(t.TempDir(), "missing.png"), t.TempDir(), Options{SkipWebP: true})
	assert.Error(t, err)
}

func assertImageWidth(t *testing.T, path string, want int) {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, want, cfg.Width)
}

func TestExtractCreditNoExif(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, 10, 10)

	credit, err := ExtractCredit(path)
	require.NoError(t, err)
	assert.Empty(t, credit.Artist)
	assert.Nil(t, credit.CreatedAt)
}
