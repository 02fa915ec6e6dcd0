package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/waveforge/waveforge/app/models"
)

// resellerRepository implements the ResellerRepository interface
type resellerRepository struct {
	db *gorm.DB
}

// NewResellerRepository creates a new reseller repository instance
func NewResellerRepository(db *gorm.DB) ResellerRepository {
	return &resellerRepository{db: db}
}

// Create creates a new reseller
func (r *resellerRepository) Create(reseller *models.Reseller) error {
	return r.db.Create(reseller).Error
}

// GetByID retrieves a reseller by its ID
func (r *resellerRepository) GetByID(id uuid.UUID) (*models.Reseller, error) {
	var reseller models.Reseller
	err := r.db.First(&reseller, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &reseller, nil
}

// List retrieves resellers, optionally only active ones
func (r *resellerRepository) List(activeOnly bool) ([]models.Reseller, error) {
	var resellers []models.Reseller
	q := r.db.Order("name ASC")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	err := q.Find(&resellers).Error
	return resellers, err
}

// Update updates an existing reseller
func (r *resellerRepository) Update(reseller *models.Reseller) error {
	return r.db.Save(reseller).Error
}

// Delete soft deletes a reseller
func (r *resellerRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Reseller{}, "id = ?", id).Error
}

// CreateCodes persists a batch of freshly generated redemption codes
func (r *resellerRepository) CreateCodes(codes []*models.ResellerCode) error {
	return r.db.Create(codes).Error
}

// GetCode retrieves a redemption code by its literal code with its product
// preloaded
func (r *resellerRepository) GetCode(code string) (*models.ResellerCode, error) {
	var rc models.ResellerCode
	err := r.db.Where("code = ?", code).Preload("Product").First(&rc).Error
	if err != nil {
		return nil, err
	}
	return &rc, nil
}

// ListCodes retrieves the codes of a reseller, optionally including redeemed
// ones
func (r *resellerRepository) ListCodes(resellerID uuid.UUID, includeRedeemed bool) ([]models.ResellerCode, error) {
	var codes []models.ResellerCode
	q := r.db.Where("reseller_id = ?", resellerID).
		Preload("Product").
		Order("created_at DESC")
	if !includeRedeemed {
		q = q.Where("redeemed_at IS NULL")
	}
	err := q.Find(&codes).Error
	return codes, err
}

// ListAllCodes retrieves every code with reseller and product preloaded, for
// the admin CSV export
func (r *resellerRepository) ListAllCodes() ([]models.ResellerCode, error) {
	var codes []models.ResellerCode
	err := r.db.Preload("Reseller").Preload("Product").
		Order("created_at DESC").Find(&codes).Error
	return codes, err
}

// ErrCodeAlreadyRedeemed is returned by RedeemCode when another request
// claimed the code first.
var ErrCodeAlreadyRedeemed = errors.New("code already redeemed")

// RedeemCode claims a code for a user and creates the product grant in one
// transaction. The claim is conditional on the code being unredeemed, so two
// concurrent redemptions cannot both succeed, and a failed grant rolls the
// claim back.
func (r *resellerRepository) RedeemCode(codeID, userID uuid.UUID, grant *models.ProductGrant) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&models.ResellerCode{}).
			Where("id = ? AND redeemed_at IS NULL", codeID).
			Updates(map[string]interface{}{
				"redeemed_by": userID,
				"redeemed_at": &now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCodeAlreadyRedeemed
		}
		return tx.Create(grant).Error
	})
}
