// internal/store/store.go
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/javajoker/variant-catalog/internal/models"
)

// ErrNotFound is returned when a record looked up by key does not exist.
var ErrNotFound = errors.New("record not found")

// ConstraintKind distinguishes the storage constraints a write can violate.
type ConstraintKind int

const (
	UniqueConstraint ConstraintKind = iota + 1
	ForeignKeyConstraint
)

// ConstraintError reports a write rejected by a storage-level constraint.
type ConstraintError struct {
	Kind       ConstraintKind
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Kind == UniqueConstraint {
		return fmt.Sprintf("unique constraint %s violated", e.Constraint)
	}
	return fmt.Sprintf("foreign key constraint %s violated", e.Constraint)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

type ProductStore interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	// FindProductWithRelations loads the product with its variants and images.
	FindProductWithRelations(ctx context.Context, id uuid.UUID) (*models.Product, error)
	// FindProducts loads every product with its variants and images.
	FindProducts(ctx context.Context) ([]models.Product, error)
	ProductBarcodeExists(ctx context.Context, barcode string) (bool, error)
	UpdateProduct(ctx context.Context, product *models.Product, patch models.ProductPatch) error
	// DeleteProduct removes the product together with its variants and images.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type VariantStore interface {
	CreateVariant(ctx context.Context, variant *models.ProductVariant) error
	FindVariantByID(ctx context.Context, id uuid.UUID) (*models.ProductVariant, error)
	// FindVariantsByProduct loads the variants of a product with color and images.
	FindVariantsByProduct(ctx context.Context, productID uuid.UUID) ([]models.ProductVariant, error)
	VariantBarcodeExists(ctx context.Context, barcode string) (bool, error)
	VariantCombinationExists(ctx context.Context, productID, colorID uuid.UUID, size string) (bool, error)
	UpdateVariant(ctx context.Context, variant *models.ProductVariant, patch models.VariantPatch) error
	DeleteVariant(ctx context.Context, id uuid.UUID) error
}

type ColorStore interface {
	CreateColor(ctx context.Context, color *models.Color) error
	FindColors(ctx context.Context) ([]models.Color, error)
}

type ImageStore interface {
	CreateImage(ctx context.Context, image *models.ProductImage) error
	// FindImages returns the product's images, narrowed to colorID when given.
	FindImages(ctx context.Context, productID uuid.UUID, colorID *uuid.UUID) ([]models.ProductImage, error)
	ColorImageExists(ctx context.Context, productID, colorID uuid.UUID) (bool, error)
}

// Store is the record store the catalog engine and services depend on.
// Implementations must enforce barcode and (product, color, size)
// uniqueness themselves and report violations as *ConstraintError.
type Store interface {
	ProductStore
	VariantStore
	ColorStore
	ImageStore
}
