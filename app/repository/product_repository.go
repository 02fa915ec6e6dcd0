package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/models"
)

// productRepository implements the ProductRepository interface
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create creates a new product in the database
func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// GetByID retrieves a product by its ID
func (r *productRepository) GetByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetBySlug retrieves a product by its slug regardless of status
func (r *productRepository) GetBySlug(slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.Where("slug = ?", slug).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetActiveBySlug retrieves a publicly visible product by its slug
func (r *productRepository) GetActiveBySlug(slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.Where("slug = ? AND status = ?", slug, models.ProductStatusActive).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) filtered(filter ProductFilter) *gorm.DB {
	q := r.db.Model(&models.Product{}).Order("created_at DESC")
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.FeaturedOnly {
		q = q.Where("is_featured = ?", true)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	return q
}

// List retrieves products matching the filter
func (r *productRepository) List(filter ProductFilter) ([]models.Product, error) {
	var products []models.Product
	err := r.filtered(filter).Find(&products).Error
	return products, err
}

// ListWithRatings retrieves products matching the filter together with their
// review aggregation. Ratings are computed fresh on every read.
func (r *productRepository) ListWithRatings(filter ProductFilter) ([]ProductWithRating, error) {
	products, err := r.List(filter)
	if err != nil {
		return nil, err
	}

	result := make([]ProductWithRating, 0, len(products))
	for _, product := range products {
		var agg struct {
			Avg   float64
			Count int64
		}
		err := r.db.Model(&models.ProductReview{}).
			Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
			Where("product_id = ? AND status = ?", product.ID, "published").
			Scan(&agg).Error
		if err != nil {
			return nil, err
		}
		result = append(result, ProductWithRating{
			Product:       product,
			AverageRating: agg.Avg,
			ReviewCount:   agg.Count,
		})
	}
	return result, nil
}

// GetReviews retrieves published reviews for a product
func (r *productRepository) GetReviews(productID uuid.UUID) ([]models.ProductReview, error) {
	var reviews []models.ProductReview
	err := r.db.Where("product_id = ? AND status = ?", productID, "published").
		Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

// Update updates an existing product in the database
func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Archive marks a product as archived; products are never hard-deleted
func (r *productRepository) Archive(id uuid.UUID) error {
	return r.db.Model(&models.Product{}).Where("id = ?", id).
		Update("status", models.ProductStatusArchived).Error
}

// Count returns the total number of products
func (r *productRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Count(&count).Error
	return count, err
}

// SlugExists checks if a slug already exists
func (r *productRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SlugExistsExceptID checks if a slug exists excluding a specific ID
func (r *productRepository) SlugExistsExceptID(slug string, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}
