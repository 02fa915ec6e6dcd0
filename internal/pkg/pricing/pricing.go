package pricing

import "math"

// EffectivePrice is the price actually charged for an item: the sale price
// when it is set and greater than zero, otherwise the regular price. A nil
// price contributes zero so aggregations over partially-priced catalogs never
// fail. A zero or negative sale price is not a valid discount.
func EffectivePrice(price, salePrice *float64) float64 {
	if salePrice != nil && *salePrice > 0 {
		return *salePrice
	}
	if price != nil {
		return *price
	}
	return 0
}

// Saving describes the advantage of a discounted price point against a total
// catalog value. Amount may be negative when the price point costs more than
// the sum of its parts; callers surface that rather than hiding it.
type Saving struct {
	Amount  float64 `json:"amount"`
	Percent int     `json:"percent"`
}

// ComputeSaving returns the saving of a price point (price with optional sale
// price) against totalValue, or nil when the price point has no price at all.
// Percent is 0 when totalValue is zero so empty compositions never divide by
// zero.
func ComputeSaving(totalValue float64, price, salePrice *float64) *Saving {
	if price == nil {
		return nil
	}
	// same rule as EffectivePrice: a zero sale price is not a discount
	discounted := EffectivePrice(price, salePrice)
	amount := totalValue - discounted

	percent := 0
	if totalValue > 0 {
		percent = int(math.Round(amount / totalValue * 100))
	}
	return &Saving{Amount: amount, Percent: percent}
}
