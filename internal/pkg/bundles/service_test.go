package bundles

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/models"
)

func fp(v float64) *float64 { return &v }

// fakeRepository serves canned rows and records which fetches ran so tests can
// assert short-circuiting.
type fakeRepository struct {
	bundle   *models.Bundle
	tiers    []models.BundleSubscriptionTier
	links    []models.BundleProduct
	tiersErr error
	linksErr error

	compositionFetched bool
}

func (f *fakeRepository) GetActiveBySlug(ctx context.Context, slug string) (*models.Bundle, error) {
	if f.bundle == nil || f.bundle.Slug != slug {
		return nil, gorm.ErrRecordNotFound
	}
	return f.bundle, nil
}

func (f *fakeRepository) GetActiveTiers(ctx context.Context, bundleID uuid.UUID) ([]models.BundleSubscriptionTier, error) {
	if f.tiersErr != nil {
		return nil, f.tiersErr
	}
	return f.tiers, nil
}

func (f *fakeRepository) GetComposition(ctx context.Context, bundleID uuid.UUID) ([]models.BundleProduct, error) {
	f.compositionFetched = true
	if f.linksErr != nil {
		return nil, f.linksErr
	}
	return f.links, nil
}

func activeBundle(slug string) *models.Bundle {
	return &models.Bundle{
		ID:     uuid.New(),
		Name:   "Producer's Arsenal",
		Slug:   slug,
		Status: models.BundleStatusActive,
	}
}

func tier(subType string, price float64, salePrice *float64) models.BundleSubscriptionTier {
	return models.BundleSubscriptionTier{
		ID:               uuid.New(),
		SubscriptionType: subType,
		Price:            fp(price),
		SalePrice:        salePrice,
		Active:           true,
	}
}

func link(order int, p *models.Product) models.BundleProduct {
	return models.BundleProduct{
		ID:           uuid.New(),
		Product:      p,
		DisplayOrder: order,
	}
}

func plugin(name string, price float64, salePrice *float64) *models.Product {
	return &models.Product{
		ID:        uuid.New(),
		Name:      name,
		Slug:      name,
		Price:     fp(price),
		SalePrice: salePrice,
		Category:  models.CategoryPlugin,
		Status:    models.ProductStatusActive,
	}
}

func TestGetBundleDetailExampleScenario(t *testing.T) {
	t.Parallel()

	bundleX := plugin("old-bundle-x", 99, nil)
	bundleX.Category = models.CategoryBundle

	repo := &fakeRepository{
		bundle: activeBundle("producers-arsenal"),
		tiers: []models.BundleSubscriptionTier{
			tier(models.SubscriptionAnnual, 149.99, nil),
			tier(models.SubscriptionMonthly, 19.99, nil),
		},
		links: []models.BundleProduct{
			link(0, plugin("plugin-a", 29, nil)),
			link(1, plugin("plugin-b", 49, fp(39))),
			link(2, bundleX),
		},
	}

	detail, err := NewService(repo).GetBundleDetail(context.Background(), "producers-arsenal")
	require.NoError(t, err)

	assert.True(t, detail.IsSubscriptionBundle)
	require.Len(t, detail.Products, 2)
	assert.Equal(t, "plugin-a", detail.Products[0].Name)
	assert.Equal(t, "plugin-b", detail.Products[1].Name)
	assert.InDelta(t, 68.0, detail.TotalValue, 1e-9)

	require.NotNil(t, detail.Savings.Monthly)
	assert.InDelta(t, 48.01, detail.Savings.Monthly.Amount, 1e-9)
	assert.Equal(t, 71, detail.Savings.Monthly.Percent)

	require.NotNil(t, detail.Savings.Annual)
	assert.InDelta(t, -81.99, detail.Savings.Annual.Amount, 1e-9)
	assert.Equal(t, -121, detail.Savings.Annual.Percent)

	assert.Nil(t, detail.Savings.Lifetime)
	assert.Nil(t, detail.Pricing.Lifetime)
	require.NotNil(t, detail.Pricing.Monthly)
	require.NotNil(t, detail.Pricing.Annual)
}

func TestGetBundleDetailFixedBundleKeepsNestedBundles(t *testing.T) {
	t.Parallel()

	nested := plugin("starter-bundle", 99, nil)
	nested.Category = models.CategoryBundle

	repo := &fakeRepository{
		bundle: activeBundle("mega-pack"),
		links: []models.BundleProduct{
			link(0, plugin("plugin-a", 29, nil)),
			link(1, nested),
		},
	}

	detail, err := NewService(repo).GetBundleDetail(context.Background(), "mega-pack")
	require.NoError(t, err)

	// Without tiers the bundle-category exclusion does not apply.
	assert.False(t, detail.IsSubscriptionBundle)
	require.Len(t, detail.Products, 2)
	assert.Equal(t, "starter-bundle", detail.Products[1].Name)
	assert.InDelta(t, 128.0, detail.TotalValue, 1e-9)
	assert.Nil(t, detail.Savings.Monthly)
	assert.Nil(t, detail.Savings.Annual)
	assert.Nil(t, detail.Savings.Lifetime)
}

func TestGetBundleDetailExcludesInactiveAndMissingProducts(t *testing.T) {
	t.Parallel()

	retired := plugin("retired", 79, nil)
	retired.Status = models.ProductStatusArchived

	repo := &fakeRepository{
		bundle: activeBundle("mega-pack"),
		links: []models.BundleProduct{
			link(0, retired),
			link(1, nil), // join resolved to nothing
			link(2, plugin("plugin-a", 29, nil)),
		},
	}

	detail, err := NewService(repo).GetBundleDetail(context.Background(), "mega-pack")
	require.NoError(t, err)

	require.Len(t, detail.Products, 1)
	assert.Equal(t, "plugin-a", detail.Products[0].Name)
	assert.InDelta(t, 29.0, detail.TotalValue, 1e-9)
}

func TestGetBundleDetailPreservesDisplayOrder(t *testing.T) {
	t.Parallel()

	inactive := plugin("gone", 10, nil)
	inactive.Status = models.ProductStatusDraft

	repo := &fakeRepository{
		bundle: activeBundle("ordered"),
		links: []models.BundleProduct{
			link(5, plugin("first", 1, nil)),
			link(10, inactive),
			link(20, plugin("second", 2, nil)),
			link(30, plugin("third", 3, nil)),
		},
	}

	detail, err := NewService(repo).GetBundleDetail(context.Background(), "ordered")
	require.NoError(t, err)

	require.Len(t, detail.Products, 3)
	assert.Equal(t, []int{5, 20, 30}, []int{
		detail.Products[0].DisplayOrder,
		detail.Products[1].DisplayOrder,
		detail.Products[2].DisplayOrder,
	})
	assert.Equal(t, "first", detail.Products[0].Name)
	assert.Equal(t, "second", detail.Products[1].Name)
	assert.Equal(t, "third", detail.Products[2].Name)
}

func TestGetBundleDetailZeroSalePriceContributesRegularPrice(t *testing.T) {
	t.Parallel()

	repo := &fakeRepository{
		bundle: activeBundle("zero-sale"),
		links: []models.BundleProduct{
			link(0, plugin("plugin-a", 49, fp(0))),
		},
	}

	detail, err := NewService(repo).GetBundleDetail(context.Background(), "zero-sale")
	require.NoError(t, err)
	assert.InDelta(t, 49.0, detail.TotalValue, 1e-9)
}

func TestGetBundleDetailEmptyCompositionIsNotAnError(t *testing.T) {
	t.Parallel()

	repo := &fakeRepository{
		bundle: activeBundle("fresh"),
		tiers: []models.BundleSubscriptionTier{
			tier(models.SubscriptionMonthly, 19.99, nil),
		},
	}

	detail, err := NewService(repo).GetBundleDetail(context.Background(), "fresh")
	require.NoError(t, err)

	assert.Empty(t, detail.Products)
	assert.Zero(t, detail.TotalValue)

	// Division-by-zero safety: defined tier against an empty composition.
	require.NotNil(t, detail.Savings.Monthly)
	assert.Equal(t, 0, detail.Savings.Monthly.Percent)
	assert.InDelta(t, -19.99, detail.Savings.Monthly.Amount, 1e-9)
}

func TestGetBundleDetailNotFound(t *testing.T) {
	t.Parallel()

	t.Run("unknown slug", func(t *testing.T) {
		t.Parallel()
		repo := &fakeRepository{}
		_, err := NewService(repo).GetBundleDetail(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrBundleNotFound)
	})

	t.Run("draft bundle is indistinguishable from absent", func(t *testing.T) {
		t.Parallel()
		// The repository constrains on status = active, so the fake simply
		// never returns a draft row; the service must map that to not found.
		repo := &fakeRepository{
			links: []models.BundleProduct{link(0, plugin("plugin-a", 29, nil))},
		}
		_, err := NewService(repo).GetBundleDetail(context.Background(), "draft-bundle")
		assert.ErrorIs(t, err, ErrBundleNotFound)
	})
}

func TestGetBundleDetailInfrastructureFailures(t *testing.T) {
	t.Parallel()

	t.Run("tiers failure short-circuits composition", func(t *testing.T) {
		t.Parallel()
		repo := &fakeRepository{
			bundle:   activeBundle("broken"),
			tiersErr: errors.New("connection reset"),
		}
		_, err := NewService(repo).GetBundleDetail(context.Background(), "broken")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrBundleNotFound)
		assert.False(t, repo.compositionFetched, "composition must not be fetched after a tiers failure")
	})

	t.Run("composition failure is not a not-found", func(t *testing.T) {
		t.Parallel()
		repo := &fakeRepository{
			bundle:   activeBundle("broken"),
			linksErr: errors.New("connection reset"),
		}
		_, err := NewService(repo).GetBundleDetail(context.Background(), "broken")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrBundleNotFound)
	})
}

func TestOrganizePricingDuplicateTiersLowestPriceWins(t *testing.T) {
	t.Parallel()

	expensive := tier(models.SubscriptionMonthly, 29.99, nil)
	cheap := tier(models.SubscriptionMonthly, 24.99, nil)

	p := organizePricing([]models.BundleSubscriptionTier{expensive, cheap})
	require.NotNil(t, p.Monthly)
	assert.Equal(t, cheap.ID, p.Monthly.ID)

	// Order independence: same winner regardless of row order.
	p = organizePricing([]models.BundleSubscriptionTier{cheap, expensive})
	require.NotNil(t, p.Monthly)
	assert.Equal(t, cheap.ID, p.Monthly.ID)
}
