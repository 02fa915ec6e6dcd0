package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/models"
)

// relationshipRepository implements the RelationshipRepository interface
type relationshipRepository struct {
	db *gorm.DB
}

// NewRelationshipRepository creates a new product relationship repository instance
func NewRelationshipRepository(db *gorm.DB) RelationshipRepository {
	return &relationshipRepository{db: db}
}

// Create creates a new product relationship
func (r *relationshipRepository) Create(rel *models.ProductRelationship) error {
	return r.db.Create(rel).Error
}

// GetByID retrieves a relationship by its ID
func (r *relationshipRepository) GetByID(id uuid.UUID) (*models.ProductRelationship, error) {
	var rel models.ProductRelationship
	err := r.db.First(&rel, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// ListByProduct retrieves the relationships of a product with the related
// products preloaded, ordered for presentation
func (r *relationshipRepository) ListByProduct(productID uuid.UUID) ([]models.ProductRelationship, error) {
	var rels []models.ProductRelationship
	err := r.db.Where("product_id = ?", productID).
		Preload("RelatedProduct").
		Order("display_order ASC").
		Find(&rels).Error
	return rels, err
}

// FindByPair retrieves the relationship between two specific products
func (r *relationshipRepository) FindByPair(productID, relatedProductID uuid.UUID) (*models.ProductRelationship, error) {
	var rel models.ProductRelationship
	err := r.db.Where("product_id = ? AND related_product_id = ?", productID, relatedProductID).
		First(&rel).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// Update updates an existing relationship
func (r *relationshipRepository) Update(rel *models.ProductRelationship) error {
	return r.db.Save(rel).Error
}

// Delete removes a relationship
func (r *relationshipRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProductRelationship{}, "id = ?", id).Error
}
