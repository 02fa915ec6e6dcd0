package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/models"
)

// audioDemoRepository implements the AudioDemoRepository interface
type audioDemoRepository struct {
	db *gorm.DB
}

// NewAudioDemoRepository creates a new audio demo repository instance
func NewAudioDemoRepository(db *gorm.DB) AudioDemoRepository {
	return &audioDemoRepository{db: db}
}

// Create creates a new audio demo
func (r *audioDemoRepository) Create(demo *models.AudioDemo) error {
	return r.db.Create(demo).Error
}

// GetByID retrieves an audio demo by its ID
func (r *audioDemoRepository) GetByID(id uuid.UUID) (*models.AudioDemo, error) {
	var demo models.AudioDemo
	err := r.db.First(&demo, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &demo, nil
}

// ListByProduct retrieves the audio demos of a product ordered for
// presentation
func (r *audioDemoRepository) ListByProduct(productID uuid.UUID, activeOnly bool) ([]models.AudioDemo, error) {
	var demos []models.AudioDemo
	q := r.db.Where("product_id = ?", productID).Order("display_order ASC")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	err := q.Find(&demos).Error
	return demos, err
}

// ExistsForURL checks whether a product already has a demo with this URL.
// Used to de-duplicate curated samples.
func (r *audioDemoRepository) ExistsForURL(productID uuid.UUID, demoURL string) (bool, error) {
	var count int64
	err := r.db.Model(&models.AudioDemo{}).
		Where("product_id = ? AND demo_url = ?", productID, demoURL).
		Count(&count).Error
	return count > 0, err
}

// Update updates an existing audio demo
func (r *audioDemoRepository) Update(demo *models.AudioDemo) error {
	return r.db.Save(demo).Error
}

// Delete removes an audio demo
func (r *audioDemoRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.AudioDemo{}, "id = ?", id).Error
}
