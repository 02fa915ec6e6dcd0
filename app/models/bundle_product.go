package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BundleProduct links a product into a bundle. It carries its own id so a
// single membership can be addressed (reordered, removed) without touching
// the pair.
type BundleProduct struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BundleID     uuid.UUID `gorm:"type:uuid;not null;index:idx_bundle_products_pair,unique,priority:1" json:"bundle_id"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index:idx_bundle_products_pair,unique,priority:2" json:"product_id"`
	Product      *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (bp *BundleProduct) BeforeCreate(tx *gorm.DB) error {
	if bp.ID == uuid.Nil {
		bp.ID = uuid.New()
	}
	return nil
}
