package upload

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
)

// Kind selects which whitelist an uploaded file is checked against.
type Kind string

const (
	KindArtwork   Kind = "artwork"
	KindInstaller Kind = "installer"
	KindDemo      Kind = "demo"
)

var artworkExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	// SVG is excluded, scriptable content without a sanitizer
}

var artworkMime = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var installerExt = map[string]bool{
	".zip": true,
	".dmg": true,
	".pkg": true,
	".msi": true,
	".exe": true,
}

var demoExt = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".flac": true,
	".ogg":  true,
}

// ValidateBySniff checks the filename extension and the first bytes of the
// file against the whitelist for the given kind. Returns the detected mime
// type or an error.
func ValidateBySniff(kind Kind, filename string, head []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	detected := http.DetectContentType(head)

	// Block scriptable content regardless of extension
	if strings.HasPrefix(detected, "text/html") || strings.HasPrefix(detected, "application/xhtml") {
		return "", errors.New("HTML content is not allowed")
	}
	if strings.HasPrefix(detected, "text/xml") || strings.HasPrefix(detected, "application/xml") || detected == "image/svg+xml" {
		return "", errors.New("SVG/XML uploads are not supported")
	}

	switch kind {
	case KindArtwork:
		if !artworkExt[ext] {
			return "", errors.New("supported artwork formats: JPG, JPEG, PNG, WEBP")
		}
		if artworkMime[detected] {
			return detected, nil
		}
	case KindInstaller:
		if !installerExt[ext] {
			return "", errors.New("supported installer formats: ZIP, DMG, PKG, MSI, EXE")
		}
		// Installer containers sniff as zip or octet-stream, trust the extension
		if detected == "application/zip" || detected == "application/octet-stream" || strings.HasPrefix(detected, "application/x-") {
			return detected, nil
		}
	case KindDemo:
		if !demoExt[ext] {
			return "", errors.New("supported audio formats: MP3, WAV, FLAC, OGG")
		}
		if strings.HasPrefix(detected, "audio/") || detected == "application/ogg" || detected == "application/octet-stream" {
			return detected, nil
		}
	default:
		return "", errors.New("unknown upload kind")
	}

	return "", errors.New("file content does not match its extension")
}
