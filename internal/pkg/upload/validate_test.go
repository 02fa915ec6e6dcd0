package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBySniff(t *testing.T) {
	t.Parallel()

	pngHead := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	jpegHead := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0, 0, 0}
	zipHead := []byte{'P', 'K', 0x03, 0x04, 0, 0, 0, 0}
	htmlHead := []byte("<!DOCTYPE html><html>")
	mp3Head := []byte{'I', 'D', '3', 0x03, 0, 0, 0, 0}

	tests := []struct {
		name     string
		kind     Kind
		filename string
		head     []byte
		wantErr  bool
	}{
		{"png artwork", KindArtwork, "cover.png", pngHead, false},
		{"jpeg artwork", KindArtwork, "cover.jpg", jpegHead, false},
		{"artwork wrong extension", KindArtwork, "cover.gif", pngHead, true},
		{"artwork html payload", KindArtwork, "cover.png", htmlHead, true},
		{"zip installer", KindInstaller, "setup.zip", zipHead, false},
		{"installer bad extension", KindInstaller, "setup.tar.gz", zipHead, true},
		{"mp3 demo", KindDemo, "loop.mp3", mp3Head, false},
		{"demo bad extension", KindDemo, "loop.aiff", mp3Head, true},
		{"unknown kind", Kind("other"), "file.png", pngHead, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mime, err := ValidateBySniff(tt.kind, tt.filename, tt.head)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, mime)
		})
	}
}
