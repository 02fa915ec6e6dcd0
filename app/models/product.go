package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ProductStatusDraft    = "draft"
	ProductStatusActive   = "active"
	ProductStatusArchived = "archived"
)

const (
	CategoryPlugin = "plugin"
	CategoryPack   = "pack"
	CategoryBundle = "bundle"
)

// Product is a sellable item in the catalog. A product with category "bundle"
// is the flat-priced storefront face of a bundle row.
type Product struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string         `gorm:"type:varchar(255);not null" json:"name" validate:"required,min=2,max=255"`
	Slug             string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug" validate:"required"`
	Tagline          string         `gorm:"type:varchar(255);default:null" json:"tagline,omitempty"`
	Description      string         `gorm:"type:text" json:"description,omitempty"`
	ShortDescription string         `gorm:"type:varchar(500);default:null" json:"short_description,omitempty"`
	Price            *float64       `gorm:"type:numeric(10,2)" json:"price"`
	SalePrice        *float64       `gorm:"type:numeric(10,2);default:null" json:"sale_price"`
	Category         string         `gorm:"type:varchar(50);not null;index" json:"category" validate:"required"`
	Status           string         `gorm:"type:varchar(20);not null;default:'draft';index" json:"status" validate:"oneof=draft active archived"`
	IsFeatured       bool           `gorm:"default:false;index" json:"is_featured"`
	FeaturedImageURL string         `gorm:"type:varchar(500);default:null" json:"featured_image_url,omitempty"`
	LogoURL          string         `gorm:"type:varchar(500);default:null" json:"logo_url,omitempty"`
	DownloadURL      string         `gorm:"type:varchar(500);default:null" json:"-"`
	Version          string         `gorm:"type:varchar(50);default:null" json:"version,omitempty"`
	ViewCount        int            `gorm:"default:0" json:"view_count"`
	ProviderProduct  string         `gorm:"column:provider_product_id;type:varchar(191);default:null" json:"-"`
	ProviderPrice    string         `gorm:"column:provider_price_id;type:varchar(191);default:null" json:"-"`
	Reviews          []ProductReview `gorm:"foreignKey:ProductID" json:"reviews,omitempty"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Product) Validate() error {
	v := validator.New()

	return v.Struct(p)
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// IsActive reports whether the product is publicly retrievable.
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}
