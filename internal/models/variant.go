// internal/models/variant.go
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductVariant is one sellable (color, size) unit of a variant-mode product.
type ProductVariant struct {
	BaseModel
	ProductID uuid.UUID        `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_product_variants_combination,priority:1"`
	ColorID   uuid.UUID        `json:"color_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_product_variants_combination,priority:2"`
	Size      string           `json:"size" gorm:"size:50;not null;uniqueIndex:idx_product_variants_combination,priority:3"`
	Price     *decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Stock     *int             `json:"stock"`
	Barcode   *string          `json:"barcode" gorm:"size:100;uniqueIndex:idx_product_variants_barcode"`

	// Relationships
	Color  *Color         `json:"color,omitempty" gorm:"foreignKey:ColorID;constraint:OnDelete:CASCADE"`
	Images []ProductImage `json:"product_images,omitempty" gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE"`
}

type VariantPatch struct {
	ColorID *uuid.UUID
	Size    *string
	Price   *decimal.Decimal
	Stock   *int
	Barcode *string
}

func (p VariantPatch) BarcodeChanged(current *string) bool {
	if p.Barcode == nil {
		return false
	}
	next := NormalizeBarcode(p.Barcode)
	if next == nil {
		return false
	}
	return current == nil || *current != *next
}

func (p VariantPatch) Apply(variant *ProductVariant) {
	if p.ColorID != nil {
		variant.ColorID = *p.ColorID
	}
	if p.Size != nil {
		variant.Size = *p.Size
	}
	if p.Price != nil {
		price := *p.Price
		variant.Price = &price
	}
	if p.Stock != nil {
		stock := *p.Stock
		variant.Stock = &stock
	}
	if p.Barcode != nil {
		variant.Barcode = NormalizeBarcode(p.Barcode)
	}
}

func (p VariantPatch) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if p.ColorID != nil {
		updates["color_id"] = *p.ColorID
	}
	if p.Size != nil {
		updates["size"] = *p.Size
	}
	if p.Price != nil {
		updates["price"] = *p.Price
	}
	if p.Stock != nil {
		updates["stock"] = *p.Stock
	}
	if p.Barcode != nil {
		updates["barcode"] = NormalizeBarcode(p.Barcode)
	}
	return updates
}
