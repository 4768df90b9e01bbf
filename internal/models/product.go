// internal/models/product.go
package models

import (
	"github.com/shopspring/decimal"
)

// Product is either a standard product sold directly or, with IsVariant set,
// a parent whose sellable units are its variants.
type Product struct {
	BaseModel
	Name        string           `json:"name" gorm:"size:255"`
	Description string           `json:"description" gorm:"type:text"`
	IsVariant   bool             `json:"is_variant" gorm:"not null;default:false"`
	Price       *decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Stock       *int             `json:"stock"`
	Barcode     *string          `json:"barcode" gorm:"size:100;uniqueIndex:idx_products_barcode"`

	// Relationships
	Variants []ProductVariant `json:"product_variants,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images   []ProductImage   `json:"product_images,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// ProductPatch is a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	IsVariant   *bool
	Price       *decimal.Decimal
	Stock       *int
	Barcode     *string
}

// BarcodeChanged reports whether the patch carries a barcode different from
// the current one.
func (p ProductPatch) BarcodeChanged(current *string) bool {
	if p.Barcode == nil {
		return false
	}
	next := NormalizeBarcode(p.Barcode)
	if next == nil {
		return false
	}
	return current == nil || *current != *next
}

func (p ProductPatch) Apply(product *Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.IsVariant != nil {
		product.IsVariant = *p.IsVariant
	}
	if p.Price != nil {
		price := *p.Price
		product.Price = &price
	}
	if p.Stock != nil {
		stock := *p.Stock
		product.Stock = &stock
	}
	if p.Barcode != nil {
		product.Barcode = NormalizeBarcode(p.Barcode)
	}
}

// Updates returns the column map for the fields present in the patch.
func (p ProductPatch) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.IsVariant != nil {
		updates["is_variant"] = *p.IsVariant
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
