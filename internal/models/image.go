// internal/models/image.go
package models

import (
	"github.com/google/uuid"
)

// ProductImage belongs to a product and may additionally be tagged with a
// color and pinned to a variant.
type ProductImage struct {
	BaseModel
	ProductID uuid.UUID  `json:"product_id" gorm:"type:uuid;not null;index:idx_product_images_product_color,priority:1"`
	VariantID *uuid.UUID `json:"variant_id" gorm:"type:uuid;index"`
	ColorID   *uuid.UUID `json:"color_id" gorm:"type:uuid;index:idx_product_images_product_color,priority:2"`
	ImageURL  string     `json:"image_url" gorm:"type:text;not null"`

	// Relationships
	Color *Color `json:"-" gorm:"foreignKey:ColorID;constraint:OnDelete:CASCADE"`
}
