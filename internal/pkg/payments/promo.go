package payments

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	// ErrPromoNotFound means no active promotion code matches the input.
	ErrPromoNotFound = errors.New("payments: promotion code not found")
	// ErrPromoInactive means the code exists but cannot be redeemed anymore.
	ErrPromoInactive = errors.New("payments: promotion code no longer valid")
)

// PromoResult is returned to the checkout after validating a code.
type PromoResult struct {
	Code        string   `json:"code"`
	CouponName  string   `json:"coupon_name,omitempty"`
	Discount    Discount `json:"discount"`
	FinalAmount float64  `json:"final_amount"`
}

// ValidatePromo looks the code up at the provider, checks redeemability and
// computes the discount against amount (dollars). Callers translate
// ErrPromoNotFound and ErrPromoInactive into user-facing responses.
func (c *Client) ValidatePromo(ctx context.Context, code string, amount float64) (*PromoResult, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, ErrPromoNotFound
	}

	promo, err := c.findPromoCode(ctx, normalized)
	if err != nil {
		return nil, err
	}

	if err := checkRedeemable(promo.Coupon, time.Now()); err != nil {
		return nil, err
	}

	discount := ComputeDiscount(promo.Coupon, amount)
	final := amount - discount.Amount
	if final < 0 {
		final = 0
	}

	return &PromoResult{
		Code:        promo.Code,
		CouponName:  promo.Coupon.Name,
		Discount:    discount,
		FinalAmount: math.Round(final*100) / 100,
	}, nil
}

func checkRedeemable(coupon Coupon, now time.Time) error {
	if !coupon.Valid {
		return ErrPromoInactive
	}
	if coupon.MaxRedemptions > 0 && coupon.TimesRedeemed >= coupon.MaxRedemptions {
		return fmt.Errorf("%w: redemption limit reached", ErrPromoInactive)
	}
	if coupon.RedeemBy != nil && now.After(*coupon.RedeemBy) {
		return fmt.Errorf("%w: expired", ErrPromoInactive)
	}
	return nil
}

// ComputeDiscount applies a coupon to amount (dollars). Percent coupons win
// over fixed ones when both are set, matching provider semantics where only
// one is ever populated.
func ComputeDiscount(coupon Coupon, amount float64) Discount {
	if coupon.PercentOff > 0 {
		off := amount * coupon.PercentOff / 100
		return Discount{
			Amount:  math.Round(off*100) / 100,
			Percent: coupon.PercentOff,
		}
	}
	if coupon.AmountOffCents > 0 {
		off := float64(coupon.AmountOffCents) / 100
		if off > amount {
			off = amount
		}
		percent := 0.0
		if amount > 0 {
			percent = math.Round(off / amount * 100)
		}
		return Discount{Amount: off, Percent: percent}
	}
	return Discount{}
}
