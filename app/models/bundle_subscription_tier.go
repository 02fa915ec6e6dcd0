package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SubscriptionMonthly  = "monthly"
	SubscriptionAnnual   = "annual"
	SubscriptionLifetime = "lifetime"
)

// BundleSubscriptionTier is a recurring price point attached to a bundle.
// At most one active tier per subscription type per bundle; enforced by a
// partial unique index in the SQL migrations.
type BundleSubscriptionTier struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BundleID         uuid.UUID `gorm:"type:uuid;not null;index" json:"bundle_id"`
	SubscriptionType string    `gorm:"type:varchar(20);not null" json:"subscription_type" validate:"oneof=monthly annual lifetime"`
	Price            *float64  `gorm:"type:numeric(10,2);not null" json:"price"`
	SalePrice        *float64  `gorm:"type:numeric(10,2);default:null" json:"sale_price"`
	ProviderProduct  string    `gorm:"column:provider_product_id;type:varchar(191);default:null" json:"-"`
	ProviderPrice    string    `gorm:"column:provider_price_id;type:varchar(191);default:null" json:"-"`
	Active           bool      `gorm:"default:true;index" json:"active"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (t *BundleSubscriptionTier) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// IsValidSubscriptionType reports whether s is a known recurring billing type.
func IsValidSubscriptionType(s string) bool {
	switch s {
	case SubscriptionMonthly, SubscriptionAnnual, SubscriptionLifetime:
		return true
	default:
		return false
	}
}
