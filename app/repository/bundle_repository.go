package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/models"
)

// bundleRepository implements the BundleRepository interface
type bundleRepository struct {
	db *gorm.DB
}

// NewBundleRepository creates a new bundle repository instance
func NewBundleRepository(db *gorm.DB) BundleRepository {
	return &bundleRepository{db: db}
}

// Create creates a new bundle in the database
func (r *bundleRepository) Create(bundle *models.Bundle) error {
	return r.db.Create(bundle).Error
}

// GetByID retrieves a bundle by its ID
func (r *bundleRepository) GetByID(id uuid.UUID) (*models.Bundle, error) {
	var bundle models.Bundle
	err := r.db.First(&bundle, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &bundle, nil
}

// GetBySlug retrieves a bundle by its slug regardless of status
func (r *bundleRepository) GetBySlug(slug string) (*models.Bundle, error) {
	var bundle models.Bundle
	err := r.db.Where("slug = ?", slug).First(&bundle).Error
	if err != nil {
		return nil, err
	}
	return &bundle, nil
}

// ListByStatus retrieves bundles in a lifecycle status with their tiers
// preloaded, ordered for presentation
func (r *bundleRepository) ListByStatus(status string, featuredOnly bool) ([]models.Bundle, error) {
	var bundles []models.Bundle
	q := r.db.Preload("Tiers", "active = ?", true).
		Where("status = ?", status).
		Order("display_order ASC").Order("created_at DESC")
	if featuredOnly {
		q = q.Where("is_featured = ?", true)
	}
	err := q.Find(&bundles).Error
	return bundles, err
}

// Update updates an existing bundle in the database
func (r *bundleRepository) Update(bundle *models.Bundle) error {
	return r.db.Save(bundle).Error
}

// Archive marks a bundle as archived; bundles are never deleted
func (r *bundleRepository) Archive(id uuid.UUID) error {
	return r.db.Model(&models.Bundle{}).Where("id = ?", id).
		Update("status", models.BundleStatusArchived).Error
}

// Count returns the total number of bundles
func (r *bundleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Bundle{}).Count(&count).Error
	return count, err
}

// SlugExists checks if a slug already exists
func (r *bundleRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Bundle{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SlugExistsExceptID checks if a slug exists excluding a specific ID
func (r *bundleRepository) SlugExistsExceptID(slug string, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Bundle{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}

// GetLinks retrieves the composition links of a bundle with products
// preloaded, ordered by display order
func (r *bundleRepository) GetLinks(bundleID uuid.UUID) ([]models.BundleProduct, error) {
	var links []models.BundleProduct
	err := r.db.Where("bundle_id = ?", bundleID).
		Preload("Product").
		Order("display_order ASC").
		Find(&links).Error
	return links, err
}

// LinkExists checks whether a product is already part of a bundle
func (r *bundleRepository) LinkExists(bundleID, productID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.BundleProduct{}).
		Where("bundle_id = ? AND product_id = ?", bundleID, productID).
		Count(&count).Error
	return count > 0, err
}

// NextDisplayOrder returns the display order for a newly added link
func (r *bundleRepository) NextDisplayOrder(bundleID uuid.UUID) (int, error) {
	var max *int
	err := r.db.Model(&models.BundleProduct{}).
		Where("bundle_id = ?", bundleID).
		Select("MAX(display_order)").Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max + 1, nil
}

// AddLink adds a product to a bundle
func (r *bundleRepository) AddLink(link *models.BundleProduct) error {
	return r.db.Create(link).Error
}

// RemoveLink removes a product from a bundle
func (r *bundleRepository) RemoveLink(bundleID, productID uuid.UUID) error {
	return r.db.Where("bundle_id = ? AND product_id = ?", bundleID, productID).
		Delete(&models.BundleProduct{}).Error
}

// ReorderLink updates the display order of a single composition link
func (r *bundleRepository) ReorderLink(linkID uuid.UUID, displayOrder int) error {
	return r.db.Model(&models.BundleProduct{}).Where("id = ?", linkID).
		Update("display_order", displayOrder).Error
}

// GetTiers retrieves all subscription tiers of a bundle, active or not
func (r *bundleRepository) GetTiers(bundleID uuid.UUID) ([]models.BundleSubscriptionTier, error) {
	var tiers []models.BundleSubscriptionTier
	err := r.db.Where("bundle_id = ?", bundleID).
		Order("subscription_type ASC").Find(&tiers).Error
	return tiers, err
}

// GetTierByID retrieves a single subscription tier
func (r *bundleRepository) GetTierByID(id uuid.UUID) (*models.BundleSubscriptionTier, error) {
	var tier models.BundleSubscriptionTier
	err := r.db.First(&tier, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tier, nil
}

// CreateTier creates a subscription tier for a bundle
func (r *bundleRepository) CreateTier(tier *models.BundleSubscriptionTier) error {
	return r.db.Create(tier).Error
}

// UpdateTier updates an existing subscription tier
func (r *bundleRepository) UpdateTier(tier *models.BundleSubscriptionTier) error {
	return r.db.Save(tier).Error
}

// DeleteTier removes a subscription tier
func (r *bundleRepository) DeleteTier(id uuid.UUID) error {
	return r.db.Delete(&models.BundleSubscriptionTier{}, "id = ?", id).Error
}

// ListActiveTiersWithBundles returns every active tier of every active bundle
// paired with its bundle, for provider price-reference matching
func (r *bundleRepository) ListActiveTiersWithBundles() ([]TierWithBundle, error) {
	var bundles []models.Bundle
	err := r.db.Preload("Tiers", "active = ?", true).
		Where("status = ?", models.BundleStatusActive).
		Find(&bundles).Error
	if err != nil {
		return nil, err
	}

	var result []TierWithBundle
	for _, bundle := range bundles {
		for _, tier := range bundle.Tiers {
			result = append(result, TierWithBundle{Tier: tier, Bundle: bundle})
		}
	}
	return result, nil
}
