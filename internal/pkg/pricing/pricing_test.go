package pricing

import (
	"math"
	"testing"
)

func fp(v float64) *float64 { return &v }

func TestEffectivePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		price     *float64
		salePrice *float64
		want      float64
	}{
		{name: "regular price only", price: fp(49), want: 49},
		{name: "valid sale price wins", price: fp(49), salePrice: fp(39), want: 39},
		{name: "zero sale price is not a discount", price: fp(49), salePrice: fp(0), want: 49},
		{name: "negative sale price is not a discount", price: fp(49), salePrice: fp(-5), want: 49},
		{name: "nil price contributes zero", want: 0},
		{name: "sale price without regular price", salePrice: fp(9.99), want: 9.99},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := EffectivePrice(tc.price, tc.salePrice); got != tc.want {
				t.Fatalf("EffectivePrice() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestComputeSaving(t *testing.T) {
	t.Parallel()

	t.Run("nil price yields nil saving", func(t *testing.T) {
		if got := ComputeSaving(100, nil, fp(10)); got != nil {
			t.Fatalf("expected nil saving, got %+v", got)
		}
	})

	t.Run("sale price is preferred when set", func(t *testing.T) {
		got := ComputeSaving(100, fp(50), fp(40))
		if got == nil || got.Amount != 60 || got.Percent != 60 {
			t.Fatalf("unexpected saving: %+v", got)
		}
	})

	t.Run("zero sale price falls back to regular price", func(t *testing.T) {
		got := ComputeSaving(100, fp(50), fp(0))
		if got == nil || got.Amount != 50 || got.Percent != 50 {
			t.Fatalf("unexpected saving: %+v", got)
		}
	})

	t.Run("negative saving is not clamped", func(t *testing.T) {
		got := ComputeSaving(68, fp(149.99), nil)
		if got == nil {
			t.Fatal("expected a saving entry")
		}
		if math.Abs(got.Amount-(-81.99)) > 1e-9 {
			t.Fatalf("amount = %v, want -81.99", got.Amount)
		}
		if got.Percent != -121 {
			t.Fatalf("percent = %d, want -121", got.Percent)
		}
	})

	t.Run("zero total value yields zero percent", func(t *testing.T) {
		got := ComputeSaving(0, fp(19.99), nil)
		if got == nil || got.Percent != 0 {
			t.Fatalf("unexpected saving: %+v", got)
		}
		if got.Amount != -19.99 {
			t.Fatalf("amount = %v", got.Amount)
		}
	})

	t.Run("rounding", func(t *testing.T) {
		got := ComputeSaving(68, fp(19.99), nil)
		if got == nil || got.Percent != 71 {
			t.Fatalf("unexpected saving: %+v", got)
		}
	})
}
