package payments

import (
	"context"
	"fmt"
	"log"
	"time"

	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"

	"github.com/waveforge/waveforge/internal/pkg/env"
)

// Client is a narrow wrapper around the payment provider SDK. Everything the
// application needs goes through the normalized types in this package so
// controllers never touch provider structs directly.
type Client struct {
	api *client.API
}

var defaultClient *Client

// Setup initializes the package-level client from PAYMENT_SECRET_KEY. Safe to
// call once at startup; handlers obtain the client via Get.
func Setup() {
	key := env.GetEnv("PAYMENT_SECRET_KEY", "")
	if key == "" {
		log.Println("[Payments] PAYMENT_SECRET_KEY not set, payment features disabled")
		return
	}
	defaultClient = NewClient(key)
}

// Get returns the configured client or nil when payments are disabled.
func Get() *Client {
	return defaultClient
}

// NewClient builds a client for the given secret key.
func NewClient(secretKey string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{api: api}
}

func (c *Client) findPromoCode(ctx context.Context, code string) (*PromoCode, error) {
	params := &stripe.PromotionCodeListParams{
		Code:   stripe.String(code),
		Active: stripe.Bool(true),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(1)

	it := c.api.PromotionCodes.List(params)
	for it.Next() {
		pc := it.PromotionCode()
		if pc.Coupon == nil {
			continue
		}
		return &PromoCode{
			ID:     pc.ID,
			Code:   pc.Code,
			Coupon: normalizeCoupon(pc.Coupon),
		}, nil
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("list promotion codes: %w", err)
	}
	return nil, ErrPromoNotFound
}

func normalizeCoupon(cp *stripe.Coupon) Coupon {
	coupon := Coupon{
		ID:             cp.ID,
		Name:           cp.Name,
		PercentOff:     cp.PercentOff,
		AmountOffCents: cp.AmountOff,
		Currency:       string(cp.Currency),
		Valid:          cp.Valid,
		MaxRedemptions: cp.MaxRedemptions,
		TimesRedeemed:  cp.TimesRedeemed,
	}
	if cp.RedeemBy > 0 {
		t := time.Unix(cp.RedeemBy, 0)
		coupon.RedeemBy = &t
	}
	return coupon
}
