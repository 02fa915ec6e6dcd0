package codes

import (
	"strings"
	"testing"
)

func TestGenerate_InvalidLength(t *testing.T) {
	t.Parallel()

	if _, err := Generate(0); err == nil {
		t.Fatalf("expected error for invalid length")
	}
}

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	t.Parallel()

	code, err := Generate(DefaultLength)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(code) != DefaultLength {
		t.Fatalf("expected code length %d, got %d", DefaultLength, len(code))
	}

	for i := 0; i < len(code); i++ {
		if strings.IndexByte(alphabet, code[i]) == -1 {
			t.Fatalf("code contains invalid character %q", code[i])
		}
	}
}

func TestGenerateBatch_Unique(t *testing.T) {
	t.Parallel()

	batch, err := GenerateBatch(500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch) != 500 {
		t.Fatalf("expected 500 codes, got %d", len(batch))
	}

	seen := make(map[string]struct{})
	for _, code := range batch {
		if _, exists := seen[code]; exists {
			t.Fatalf("duplicate code generated in batch: %s", code)
		}
		seen[code] = struct{}{}
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "abcd-efgh-jklm-npqr", want: "ABCDEFGHJKLMNPQR"},
		{in: "  ABCD EFGH ", want: "ABCDEFGH"},
		{in: "abcd", want: "ABCD"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	if got := Format("ABCDEFGHJKLMNPQR"); got != "ABCD-EFGH-JKLM-NPQR" {
		t.Fatalf("Format() = %q", got)
	}
	if got := Format("ABCDE"); got != "ABCD-E" {
		t.Fatalf("Format() = %q", got)
	}
}

func TestFormatNormalizeRoundTrip(t *testing.T) {
	t.Parallel()

	code, err := Generate(DefaultLength)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Normalize(Format(code)); got != code {
		t.Fatalf("round trip mismatch: %q != %q", got, code)
	}
}
