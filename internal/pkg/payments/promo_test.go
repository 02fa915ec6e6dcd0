package payments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDiscount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		coupon Coupon
		amount float64
		want   Discount
	}{
		{
			name:   "percent off",
			coupon: Coupon{PercentOff: 25},
			amount: 80,
			want:   Discount{Amount: 20, Percent: 25},
		},
		{
			name:   "percent off rounds to cents",
			coupon: Coupon{PercentOff: 33},
			amount: 9.99,
			want:   Discount{Amount: 3.3, Percent: 33},
		},
		{
			name:   "fixed amount off",
			coupon: Coupon{AmountOffCents: 1500},
			amount: 60,
			want:   Discount{Amount: 15, Percent: 25},
		},
		{
			name:   "fixed amount capped at total",
			coupon: Coupon{AmountOffCents: 5000},
			amount: 30,
			want:   Discount{Amount: 30, Percent: 100},
		},
		{
			name:   "percent wins when both set",
			coupon: Coupon{PercentOff: 10, AmountOffCents: 9999},
			amount: 100,
			want:   Discount{Amount: 10, Percent: 10},
		},
		{
			name:   "empty coupon",
			coupon: Coupon{},
			amount: 50,
			want:   Discount{},
		},
		{
			name:   "fixed amount on zero total",
			coupon: Coupon{AmountOffCents: 500},
			amount: 0,
			want:   Discount{Amount: 0, Percent: 0},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ComputeDiscount(tc.coupon, tc.amount)
			assert.InDelta(t, tc.want.Amount, got.Amount, 0.001)
			assert.InDelta(t, tc.want.Percent, got.Percent, 0.001)
		})
	}
}

func TestCheckRedeemable(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name    string
		coupon  Coupon
		wantErr bool
	}{
		{
			name:   "valid coupon",
			coupon: Coupon{Valid: true},
		},
		{
			name:    "provider marked invalid",
			coupon:  Coupon{Valid: false},
			wantErr: true,
		},
		{
			name:    "redemption limit reached",
			coupon:  Coupon{Valid: true, MaxRedemptions: 10, TimesRedeemed: 10},
			wantErr: true,
		},
		{
			name:   "under redemption limit",
			coupon: Coupon{Valid: true, MaxRedemptions: 10, TimesRedeemed: 9},
		},
		{
			name:    "expired",
			coupon:  Coupon{Valid: true, RedeemBy: &past},
			wantErr: true,
		},
		{
			name:   "not yet expired",
			coupon: Coupon{Valid: true, RedeemBy: &future},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := checkRedeemable(tc.coupon, now)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrPromoInactive)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseCartItems(t *testing.T) {
	t.Parallel()

	t.Run("valid payload", func(t *testing.T) {
		t.Parallel()
		raw := `[{"product_id":"p1","name":"Vintage Compressor","quantity":1,"price":49.99}]`
		items := ParseCartItems(raw)
		require.Len(t, items, 1)
		assert.Equal(t, "Vintage Compressor", items[0].Name)
		assert.Equal(t, 49.99, items[0].Price)
	})

	t.Run("malformed payload yields empty slice", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, ParseCartItems("{not json"))
	})

	t.Run("empty payload yields empty slice", func(t *testing.T) {
		t.Parallel()
		items := ParseCartItems("")
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func TestSubscriptionIsEntitling(t *testing.T) {
	t.Parallel()

	entitling := []string{"active", "trialing", "past_due"}
	for _, status := range entitling {
		assert.True(t, Subscription{Status: status}.IsEntitling(), status)
	}
	for _, status := range []string{"canceled", "unpaid", "incomplete", "incomplete_expired", "paused", ""} {
		assert.False(t, Subscription{Status: status}.IsEntitling(), status)
	}
}
