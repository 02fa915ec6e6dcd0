package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResellerCode is a single-use redemption code sold through a reseller. When
// redeemed it turns into a product grant for the redeeming user.
type ResellerCode struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ResellerID uuid.UUID  `gorm:"type:uuid;not null;index" json:"reseller_id"`
	Reseller   *Reseller  `gorm:"foreignKey:ResellerID" json:"reseller,omitempty"`
	ProductID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"product_id"`
	Product    *Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Code       string     `gorm:"type:varchar(32);not null;uniqueIndex" json:"code"`
	RedeemedBy *uuid.UUID `gorm:"type:uuid;default:null;index" json:"redeemed_by,omitempty"`
	RedeemedAt *time.Time `gorm:"type:timestamp;default:null" json:"redeemed_at,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (c *ResellerCode) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// IsRedeemed reports whether the code has already been used.
func (c *ResellerCode) IsRedeemed() bool {
	return c.RedeemedAt != nil
}
