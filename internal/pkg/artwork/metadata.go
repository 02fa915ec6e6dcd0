package artwork

import (
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
)

func init() {
	exif.RegisterParsers(mknote.All...)
}

// Credit holds attribution pulled from artwork metadata, shown on the admin
// artwork detail view so licensed images keep their credit line.
type Credit struct {
	Artist    string
	Copyright string
	Software  string
	CreatedAt *time.Time
}

// ExtractCredit reads attribution fields from the file's EXIF block. Files
// without EXIF data return an empty Credit and no error.
func ExtractCredit(filePath string) (Credit, error) {
	var credit Credit

	f, err := os.Open(filePath)
	if err != nil {
		return credit, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		// most exported artwork carries no EXIF block
		return credit, nil
	}

	if tag, err := x.Get(exif.Artist); err == nil {
		credit.Artist = strings.TrimSpace(strings.Trim(tag.String(), `"`))
	}
	if tag, err := x.Get(exif.Copyright); err == nil {
		credit.Copyright = strings.TrimSpace(strings.Trim(tag.String(), `"`))
	}
	if tag, err := x.Get(exif.Software); err == nil {
		credit.Software = strings.TrimSpace(strings.Trim(tag.String(), `"`))
	}
	if dt, err := x.DateTime(); err == nil {
		credit.CreatedAt = &dt
	}

	return credit, nil
}
