package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RelationshipRelated = "related"
	RelationshipUpgrade = "upgrade"
	RelationshipAddon   = "addon"
)

// ProductRelationship links two products (e.g. a plugin and its expansion
// pack). The relationship is itself addressable so the admin UI can edit or
// delete a single link.
type ProductRelationship struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID        uuid.UUID `gorm:"type:uuid;not null;index:idx_product_relationships_pair,priority:1" json:"product_id"`
	RelatedProductID uuid.UUID `gorm:"type:uuid;not null;index:idx_product_relationships_pair,priority:2" json:"related_product_id"`
	RelatedProduct   *Product  `gorm:"foreignKey:RelatedProductID" json:"related_product,omitempty"`
	RelationshipType string    `gorm:"type:varchar(50);not null;default:'related'" json:"relationship_type" validate:"oneof=related upgrade addon"`
	DisplayOrder     int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *ProductRelationship) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
