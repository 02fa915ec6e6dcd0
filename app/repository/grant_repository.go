package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/models"
)

// grantRepository implements the GrantRepository interface
type grantRepository struct {
	db *gorm.DB
}

// NewGrantRepository creates a new product grant repository instance
func NewGrantRepository(db *gorm.DB) GrantRepository {
	return &grantRepository{db: db}
}

// Create creates a new product grant
func (r *grantRepository) Create(grant *models.ProductGrant) error {
	return r.db.Create(grant).Error
}

// GetByUserAndProduct retrieves the grant of a user for a specific product
func (r *grantRepository) GetByUserAndProduct(userID, productID uuid.UUID) (*models.ProductGrant, error) {
	var grant models.ProductGrant
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		First(&grant).Error
	if err != nil {
		return nil, err
	}
	return &grant, nil
}

// ListByUser retrieves the non-revoked grants of a user with products
// preloaded, newest first
func (r *grantRepository) ListByUser(userID uuid.UUID) ([]models.ProductGrant, error) {
	var grants []models.ProductGrant
	err := r.db.Where("user_id = ? AND revoked_at IS NULL", userID).
		Preload("Product").
		Order("granted_at DESC").
		Find(&grants).Error
	return grants, err
}

// Revoke withdraws a grant without deleting its history
func (r *grantRepository) Revoke(id uuid.UUID) error {
	now := time.Now()
	return r.db.Model(&models.ProductGrant{}).Where("id = ?", id).
		Update("revoked_at", &now).Error
}

// Count returns the total number of non-revoked grants
func (r *grantRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ProductGrant{}).Where("revoked_at IS NULL").Count(&count).Error
	return count, err
}
