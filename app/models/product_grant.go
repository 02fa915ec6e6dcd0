package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GrantSourcePurchase = "purchase"
	GrantSourceRedeem   = "redeem"
	GrantSourceAdmin    = "admin"
)

// ProductGrant records that a user owns a product, regardless of how it was
// acquired. Backs the "my products" library and download authorization.
type ProductGrant struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_product_grants_pair,unique,priority:1" json:"user_id"`
	ProductID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_product_grants_pair,unique,priority:2" json:"product_id"`
	Product        *Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Source         string     `gorm:"type:varchar(20);not null;default:'purchase'" json:"source" validate:"oneof=purchase redeem admin"`
	ResellerCodeID *uuid.UUID `gorm:"type:uuid;default:null;index" json:"reseller_code_id,omitempty"`
	GrantedAt      time.Time  `gorm:"autoCreateTime" json:"granted_at"`
	RevokedAt      *time.Time `gorm:"type:timestamp;default:null" json:"revoked_at,omitempty"`
}

func (g *ProductGrant) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// IsRevoked reports whether the grant has been withdrawn.
func (g *ProductGrant) IsRevoked() bool {
	return g.RevokedAt != nil
}
