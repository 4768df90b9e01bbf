// internal/catalog/engine.go
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/javajoker/variant-catalog/internal/models"
	"github.com/javajoker/variant-catalog/internal/store"
)

// Engine decides whether a proposed catalog mutation may be persisted.
// Every check reads the store at decision time and takes no locks; the
// store's unique indexes remain the authoritative guard against races.
type Engine struct {
	store store.Store
}

func NewEngine(s store.Store) *Engine {
	return &Engine{store: s}
}

// ValidateProductCreate accepts the product unless its barcode is already
// used by another product.
func (e *Engine) ValidateProductCreate(ctx context.Context, input *models.Product) (*models.Product, error) {
	product := *input
	product.Barcode = models.NormalizeBarcode(input.Barcode)
	product.Variants, product.Images = nil, nil

	if product.Barcode != nil {
		exists, err := e.store.ProductBarcodeExists(ctx, *product.Barcode)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, DuplicateBarcode(*product.Barcode)
		}
	}

	return &product, nil
}

// ValidateProductUpdate re-checks barcode uniqueness only when the patch
// changes the barcode. The store applies the patch itself.
func (e *Engine) ValidateProductUpdate(ctx context.Context, existing *models.Product, patch models.ProductPatch) error {
	if patch.BarcodeChanged(existing.Barcode) {
		barcode := *models.NormalizeBarcode(patch.Barcode)
		exists, err := e.store.ProductBarcodeExists(ctx, barcode)
		if err != nil {
			return err
		}
		if exists {
			return DuplicateBarcode(barcode)
		}
	}

	return nil
}

// ValidateVariantCreate runs the variant gate in a fixed order: product
// existence, variant mode, barcode, combination, then the color image
// prerequisite. The first failing check is reported.
func (e *Engine) ValidateVariantCreate(ctx context.Context, productID uuid.UUID, input *models.ProductVariant) (*models.ProductVariant, error) {
	product, err := e.store.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("product")
		}
		return nil, err
	}

	if !product.IsVariant {
		return nil, NotVariantCapable()
	}

	variant := *input
	variant.ProductID = product.ID
	variant.Barcode = models.NormalizeBarcode(input.Barcode)
	variant.Color, variant.Images = nil, nil

	if variant.Barcode != nil {
		exists, err := e.store.VariantBarcodeExists(ctx, *variant.Barcode)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, DuplicateBarcode(*variant.Barcode)
		}
	}

	exists, err := e.store.VariantCombinationExists(ctx, variant.ProductID, variant.ColorID, variant.Size)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, DuplicateVariantCombination()
	}

	hasImage, err := e.store.ColorImageExists(ctx, variant.ProductID, variant.ColorID)
	if err != nil {
		return nil, err
	}
	if !hasImage {
		return nil, MissingColorImage()
	}

	return &variant, nil
}

// ValidateVariantUpdate re-checks barcode uniqueness only when the patch
// changes the barcode. Color and size changes are accepted as they are;
// the storage index still rejects a colliding combination.
func (e *Engine) ValidateVariantUpdate(ctx context.Context, existing *models.ProductVariant, patch models.VariantPatch) error {
	if patch.BarcodeChanged(existing.Barcode) {
		barcode := *models.NormalizeBarcode(patch.Barcode)
		exists, err := e.store.VariantBarcodeExists(ctx, barcode)
		if err != nil {
			return err
		}
		if exists {
			return DuplicateBarcode(barcode)
		}
	}

	return nil
}

// ValidateColorCreate accepts every color; names and hex codes may repeat.
func (e *Engine) ValidateColorCreate(input *models.Color) (*models.Color, error) {
	color := *input
	return &color, nil
}

// ValidateImageCreate requires the product to exist and, for variant-mode
// products, a color tag on the image.
func (e *Engine) ValidateImageCreate(ctx context.Context, productID uuid.UUID, input *models.ProductImage) (*models.ProductImage, error) {
	product, err := e.store.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NotFound("product")
		}
		return nil, err
	}

	if product.IsVariant && input.ColorID == nil {
		return nil, ColorRequiredForVariantProduct()
	}

	image := *input
	image.ProductID = product.ID
	image.Color = nil
	return &image, nil
}

// FromStoreError maps storage failures onto the violation taxonomy. Errors
// that are not constraint or lookup failures pass through unchanged.
func FromStoreError(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return NotFound(resource)
	}

	var constraintErr *store.ConstraintError
	if !errors.As(err, &constraintErr) {
		return err
	}

	if constraintErr.Kind == store.ForeignKeyConstraint {
		return ValidationInput("referenced record does not exist (%s)", constraintErr.Constraint)
	}

	switch constraintErr.Constraint {
	case models.IndexProductBarcode, models.IndexVariantBarcode:
		return &Violation{Kind: KindDuplicateBarcode, Message: "barcode is already in use"}
	case models.IndexVariantCombination:
		return DuplicateVariantCombination()
	default:
		return fmt.Errorf("unexpected unique constraint %s: %w", constraintErr.Constraint, err)
	}
}
