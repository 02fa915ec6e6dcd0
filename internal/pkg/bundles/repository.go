package bundles

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/models"
)

// Repository is the narrow read surface the aggregator needs from the store.
type Repository interface {
	GetActiveBySlug(ctx context.Context, slug string) (*models.Bundle, error)
	GetActiveTiers(ctx context.Context, bundleID uuid.UUID) ([]models.BundleSubscriptionTier, error)
	GetComposition(ctx context.Context, bundleID uuid.UUID) ([]models.BundleProduct, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a bundle read repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// GetActiveBySlug resolves a bundle by exact slug, constrained to active
// status. Draft and archived bundles are indistinguishable from absent ones.
func (r *gormRepository) GetActiveBySlug(ctx context.Context, slug string) (*models.Bundle, error) {
	var bundle models.Bundle
	err := r.db.WithContext(ctx).
		Where("slug = ? AND status = ?", slug, models.BundleStatusActive).
		First(&bundle).Error
	if err != nil {
		return nil, err
	}
	return &bundle, nil
}

// GetActiveTiers returns the active subscription tiers for a bundle ordered
// by subscription type ascending.
func (r *gormRepository) GetActiveTiers(ctx context.Context, bundleID uuid.UUID) ([]models.BundleSubscriptionTier, error) {
	var tiers []models.BundleSubscriptionTier
	err := r.db.WithContext(ctx).
		Where("bundle_id = ? AND active = ?", bundleID, true).
		Order("subscription_type ASC").
		Find(&tiers).Error
	return tiers, err
}

// GetComposition returns the bundle's product links with their products
// preloaded, ordered by display order ascending. A link whose product row is
// gone comes back with a nil Product; the service filters it out.
func (r *gormRepository) GetComposition(ctx context.Context, bundleID uuid.UUID) ([]models.BundleProduct, error) {
	var links []models.BundleProduct
	err := r.db.WithContext(ctx).
		Where("bundle_id = ?", bundleID).
		Preload("Product").
		Order("display_order ASC").
		Find(&links).Error
	return links, err
}
