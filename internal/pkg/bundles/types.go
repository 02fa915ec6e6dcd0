package bundles

import (
	"github.com/waveforge/waveforge/app/models"
	"github.com/waveforge/waveforge/internal/pkg/pricing"
)

// Pricing maps each subscription type to its active tier. A missing tier is a
// valid, common state, not an error.
type Pricing struct {
	Monthly  *models.BundleSubscriptionTier `json:"monthly,omitempty"`
	Annual   *models.BundleSubscriptionTier `json:"annual,omitempty"`
	Lifetime *models.BundleSubscriptionTier `json:"lifetime,omitempty"`
}

// Savings carries one entry per subscription type. An undefined tier yields a
// null entry; a defined tier always yields an amount/percent pair, even when
// the amount is negative. Callers distinguish "no tier" from "zero savings".
type Savings struct {
	Monthly  *pricing.Saving `json:"monthly"`
	Annual   *pricing.Saving `json:"annual"`
	Lifetime *pricing.Saving `json:"lifetime"`
}

// ProductEntry is a bundled product annotated with its position inside the
// bundle so clients can re-sort without losing the admin-assigned order.
type ProductEntry struct {
	models.Product
	DisplayOrder int `json:"display_order"`
}

// BundleDetail is the composed retrieval result for a single bundle: the
// bundle row itself plus its filtered composition and derived valuation.
type BundleDetail struct {
	models.Bundle
	Products             []ProductEntry `json:"products"`
	TotalValue           float64        `json:"totalValue"`
	Pricing              Pricing        `json:"pricing"`
	IsSubscriptionBundle bool           `json:"isSubscriptionBundle"`
	Savings              Savings        `json:"savings"`
}
