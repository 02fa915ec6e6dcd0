package codes

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Alphabet for redemption codes. Ambiguous characters (0/O, 1/I/l) are kept
// out so codes survive being read over the phone or printed on a card.
const alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// DefaultLength is the code length handed out to resellers.
const DefaultLength = 16

// Generate creates a cryptographically secure random redemption code.
func Generate(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid code length: %d", length)
	}

	// Rejection sampling to avoid modulo bias.
	// 224 is the largest multiple of 32 below 256.
	const maxRandomByte = 224

	code := make([]byte, length)
	buf := make([]byte, length*2)
	written := 0

	for written < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read secure random bytes: %w", err)
		}

		for _, b := range buf {
			if b >= maxRandomByte {
				continue
			}
			code[written] = alphabet[int(b)%len(alphabet)]
			written++
			if written == length {
				break
			}
		}
	}

	return string(code), nil
}

// GenerateBatch creates count unique codes of the default length. Collisions
// within one batch are retried; the database unique index catches the rest.
func GenerateBatch(count int) ([]string, error) {
	if count <= 0 {
		return nil, fmt.Errorf("invalid batch size: %d", count)
	}

	seen := make(map[string]struct{}, count)
	batch := make([]string, 0, count)
	for len(batch) < count {
		code, err := Generate(DefaultLength)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		batch = append(batch, code)
	}
	return batch, nil
}

// Normalize maps user input to canonical code form: uppercased, with
// whitespace and separator dashes removed.
func Normalize(raw string) string {
	cleaned := strings.ToUpper(strings.TrimSpace(raw))
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	return cleaned
}

// Format groups a code into dash-separated blocks of four for display.
func Format(code string) string {
	var b strings.Builder
	for i := 0; i < len(code); i += 4 {
		if i > 0 {
			b.WriteByte('-')
		}
		end := i + 4
		if end > len(code) {
			end = len(code)
		}
		b.WriteString(code[i:end])
	}
	return b.String()
}
