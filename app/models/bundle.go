package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BundleStatusDraft    = "draft"
	BundleStatusActive   = "active"
	BundleStatusArchived = "archived"
)

// Bundle is a sellable grouping of products. A bundle with at least one active
// subscription tier is sold on a recurring basis; one without tiers is sold at
// its own flat price. Bundles are archived, never deleted.
type Bundle struct {
	ID                 uuid.UUID                `gorm:"type:uuid;primaryKey" json:"id"`
	Name               string                   `gorm:"type:varchar(255);not null" json:"name" validate:"required,min=2,max=255"`
	Slug               string                   `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug" validate:"required"`
	Tagline            string                   `gorm:"type:varchar(255);default:null" json:"tagline,omitempty"`
	Description        string                   `gorm:"type:text" json:"description,omitempty"`
	ShortDescription   string                   `gorm:"type:varchar(500);default:null" json:"short_description,omitempty"`
	Price              *float64                 `gorm:"type:numeric(10,2)" json:"price"`
	SalePrice          *float64                 `gorm:"type:numeric(10,2);default:null" json:"sale_price"`
	Status             string                   `gorm:"type:varchar(20);not null;default:'draft';index" json:"status" validate:"oneof=draft active archived"`
	IsFeatured         bool                     `gorm:"default:false;index" json:"is_featured"`
	DisplayOrder       int                      `gorm:"not null;default:0" json:"display_order"`
	FeaturedImageURL   string                   `gorm:"type:varchar(500);default:null" json:"featured_image_url,omitempty"`
	LogoURL            string                   `gorm:"type:varchar(500);default:null" json:"logo_url,omitempty"`
	BackgroundImageURL string                   `gorm:"type:varchar(500);default:null" json:"background_image_url,omitempty"`
	MetaTitle          string                   `gorm:"type:varchar(255);default:null" json:"meta_title,omitempty"`
	MetaDescription    string                   `gorm:"type:varchar(500);default:null" json:"meta_description,omitempty"`
	Tiers              []BundleSubscriptionTier `gorm:"foreignKey:BundleID" json:"tiers,omitempty"`
	CreatedAt          time.Time                `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time                `gorm:"autoUpdateTime" json:"updated_at"`
}

func (b *Bundle) Validate() error {
	v := validator.New()

	return v.Struct(b)
}

func (b *Bundle) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// IsActive reports whether the bundle is publicly retrievable.
func (b *Bundle) IsActive() bool {
	return b.Status == BundleStatusActive
}
