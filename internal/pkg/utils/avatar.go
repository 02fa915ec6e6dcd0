package utils

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GravatarURL returns the Gravatar image URL for an email address.
// Used as the avatar fallback when neither the user nor their OAuth
// provider supplied one. Size defaults to 200px.
func GravatarURL(email string, size int) string {
	if size <= 0 {
		size = 200
	}

	email = strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(email))

	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=%d&d=mp", hash, size)
}
