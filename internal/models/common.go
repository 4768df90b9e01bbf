// internal/models/common.go
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Base model with common fields. Catalog records are hard deleted so that
// unique indexes and ON DELETE CASCADE keep their meaning.
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Storage-level unique index names. The store maps violations of these
// back onto catalog violations.
const (
	IndexProductBarcode     = "idx_products_barcode"
	IndexVariantBarcode     = "idx_product_variants_barcode"
	IndexVariantCombination = "idx_product_variants_combination"
)

// StringPtr returns nil for an empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// NormalizeBarcode trims the value and treats an empty barcode as absent.
func NormalizeBarcode(barcode *string) *string {
	if barcode == nil {
		return nil
	}
	return StringPtr(strings.TrimSpace(*barcode))
}
