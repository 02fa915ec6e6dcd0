package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AudioDemo is a curated audio sample attached to a product page.
type AudioDemo struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title" validate:"required,max=255"`
	Artist          string    `gorm:"type:varchar(255);default:null" json:"artist,omitempty"`
	DemoURL         string    `gorm:"type:varchar(500);not null" json:"demo_url" validate:"required,url"`
	DurationSeconds int       `gorm:"default:0" json:"duration_seconds"`
	DisplayOrder    int       `gorm:"not null;default:0" json:"display_order"`
	Active          bool      `gorm:"default:true;index" json:"active"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (d *AudioDemo) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
