// internal/catalog/query.go
package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/javajoker/variant-catalog/internal/models"
	"github.com/javajoker/variant-catalog/internal/store"
)

type ProductFilter struct {
	ColorID *uuid.UUID
}

type ImageFilter struct {
	ColorID *uuid.UUID
}

// QueryService composes read models for the boundary.
type QueryService struct {
	store store.Store
}

func NewQueryService(s store.Store) *QueryService {
	return &QueryService{store: s}
}

// ListProducts returns every product with variants and images. A color
// filter keeps only products with at least one variant of that color; it is
// applied after the join, so images alone never qualify a product.
func (q *QueryService) ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	products, err := q.store.FindProducts(ctx)
	if err != nil {
		return nil, err
	}
	if filter.ColorID == nil {
		return products, nil
	}

	filtered := make([]models.Product, 0, len(products))
	for _, product := range products {
		if hasVariantColor(product, *filter.ColorID) {
			filtered = append(filtered, product)
		}
	}
	return filtered, nil
}

func (q *QueryService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := q.store.FindProductWithRelations(ctx, id)
	if err != nil {
		return nil, FromStoreError(err, "product")
	}
	return product, nil
}

// ListVariants returns the product's variants with color and images; a
// product without variants yields an empty slice.
func (q *QueryService) ListVariants(ctx context.Context, productID uuid.UUID) ([]models.ProductVariant, error) {
	return q.store.FindVariantsByProduct(ctx, productID)
}

// ListImages pushes the color filter down to the store.
func (q *QueryService) ListImages(ctx context.Context, productID uuid.UUID, filter ImageFilter) ([]models.ProductImage, error) {
	return q.store.FindImages(ctx, productID, filter.ColorID)
}

func (q *QueryService) ListColors(ctx context.Context) ([]models.Color, error) {
	return q.store.FindColors(ctx)
}

func hasVariantColor(product models.Product, colorID uuid.UUID) bool {
	for _, variant := range product.Variants {
		if variant.ColorID == colorID {
			return true
		}
	}
	return false
}
