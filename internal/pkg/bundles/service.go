package bundles

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/models"
	"github.com/waveforge/waveforge/internal/pkg/pricing"
)

// ErrBundleNotFound is returned when a slug does not resolve to an active
// bundle. Callers map it to a 404; it never wraps infrastructure failures.
var ErrBundleNotFound = errors.New("bundle not found")

// Service assembles bundle detail responses: constituent products, pricing
// tiers and derived valuation metrics.
type Service struct {
	repo Repository
}

// NewService creates a bundle service from an injected repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NewServiceFromDB creates a bundle service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db))
}

// GetBundleDetail resolves an active bundle by slug and composes its products,
// subscription pricing and savings. A subscription bundle (one with at least
// one active tier) never lists linked products of category "bundle": nesting a
// flat-priced bundle inside a subscription bundle double-counts value.
//
// Any failure of an underlying fetch short-circuits the remaining steps; no
// partial result is ever composed.
func (s *Service) GetBundleDetail(ctx context.Context, slug string) (*BundleDetail, error) {
	bundle, err := s.repo.GetActiveBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBundleNotFound
		}
		return nil, fmt.Errorf("resolve bundle %q: %w", slug, err)
	}

	tiers, err := s.repo.GetActiveTiers(ctx, bundle.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch tiers for bundle %q: %w", slug, err)
	}

	p := organizePricing(tiers)
	isSubscriptionBundle := len(tiers) > 0

	links, err := s.repo.GetComposition(ctx, bundle.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch composition for bundle %q: %w", slug, err)
	}

	// Filtering keeps the display_order sequence from the fetch; survivors are
	// never reordered relative to each other.
	products := make([]ProductEntry, 0, len(links))
	totalValue := 0.0
	for _, link := range links {
		if link.Product == nil {
			continue
		}
		if link.Product.Status != models.ProductStatusActive {
			continue
		}
		if isSubscriptionBundle && link.Product.Category == models.CategoryBundle {
			continue
		}
		products = append(products, ProductEntry{
			Product:      *link.Product,
			DisplayOrder: link.DisplayOrder,
		})
		totalValue += pricing.EffectivePrice(link.Product.Price, link.Product.SalePrice)
	}

	detail := &BundleDetail{
		Bundle:               *bundle,
		Products:             products,
		TotalValue:           totalValue,
		Pricing:              p,
		IsSubscriptionBundle: isSubscriptionBundle,
		Savings: Savings{
			Monthly:  tierSaving(totalValue, p.Monthly),
			Annual:   tierSaving(totalValue, p.Annual),
			Lifetime: tierSaving(totalValue, p.Lifetime),
		},
	}

	return detail, nil
}

// organizePricing keys the active tiers by subscription type. Should two
// active tiers of one type slip past the data-layer uniqueness guarantee, the
// cheapest effective price wins so the outcome does not depend on row order.
func organizePricing(tiers []models.BundleSubscriptionTier) Pricing {
	var p Pricing
	for i := range tiers {
		tier := &tiers[i]
		var slot **models.BundleSubscriptionTier
		switch tier.SubscriptionType {
		case models.SubscriptionMonthly:
			slot = &p.Monthly
		case models.SubscriptionAnnual:
			slot = &p.Annual
		case models.SubscriptionLifetime:
			slot = &p.Lifetime
		default:
			continue
		}
		if *slot == nil || effectiveTierPrice(tier) < effectiveTierPrice(*slot) {
			*slot = tier
		}
	}
	return p
}

func effectiveTierPrice(t *models.BundleSubscriptionTier) float64 {
	return pricing.EffectivePrice(t.Price, t.SalePrice)
}

// tierSaving computes the savings entry for one tier, or nil when the tier is
// undefined or has no price. Nil means "no tier", never "zero savings".
func tierSaving(totalValue float64, tier *models.BundleSubscriptionTier) *pricing.Saving {
	if tier == nil {
		return nil
	}
	return pricing.ComputeSaving(totalValue, tier.Price, tier.SalePrice)
}
