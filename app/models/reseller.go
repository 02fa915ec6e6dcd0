package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reseller is a distribution partner that hands out redemption codes.
type Reseller struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name" validate:"required,min=2,max=255"`
	ContactEmail string         `gorm:"type:varchar(200);default:null" json:"contact_email,omitempty" validate:"omitempty,email"`
	Website      string         `gorm:"type:varchar(255);default:null" json:"website,omitempty"`
	Active       bool           `gorm:"default:true;index" json:"active"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (r *Reseller) Validate() error {
	v := validator.New()

	return v.Struct(r)
}

func (r *Reseller) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
