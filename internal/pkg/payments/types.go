package payments

import "time"

// Coupon is the provider-agnostic shape of a discount coupon. Amounts are in
// cents, matching the provider's wire format; percent is 0..100.
type Coupon struct {
	ID             string
	Name           string
	PercentOff     float64
	AmountOffCents int64
	Currency       string
	Valid          bool
	MaxRedemptions int64
	TimesRedeemed  int64
	RedeemBy       *time.Time
}

// PromoCode pairs a customer-facing promotion code with its coupon.
type PromoCode struct {
	ID     string
	Code   string
	Coupon Coupon
}

// Discount is the computed outcome of applying a coupon to an amount in
// dollars.
type Discount struct {
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

// OrderItem is a single cart line parsed from a payment's metadata.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is a completed payment normalized for the order history endpoint.
type Order struct {
	ID          string      `json:"id"`
	AmountCents int64       `json:"amount_cents"`
	Currency    string      `json:"currency"`
	CreatedAt   time.Time   `json:"created_at"`
	Items       []OrderItem `json:"items"`
	ReceiptURL  string      `json:"receipt_url,omitempty"`
	InvoiceID   string      `json:"invoice_id,omitempty"`
}

// Subscription mirrors a provider subscription with just the fields the
// storefront needs to match tiers and show lifecycle state.
type Subscription struct {
	ID                 string     `json:"id"`
	Status             string     `json:"status"`
	PriceIDs           []string   `json:"price_ids"`
	CurrentPeriodStart time.Time  `json:"current_period_start"`
	CurrentPeriodEnd   time.Time  `json:"current_period_end"`
	CancelAtPeriodEnd  bool       `json:"cancel_at_period_end"`
	CanceledAt         *time.Time `json:"canceled_at,omitempty"`
}

// IsEntitling reports whether the subscription status still grants access.
func (s Subscription) IsEntitling() bool {
	switch s.Status {
	case "active", "trialing", "past_due":
		return true
	default:
		return false
	}
}
