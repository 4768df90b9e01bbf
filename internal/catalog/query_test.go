// internal/catalog/query_test.go
package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/variant-catalog/internal/models"
	"github.com/javajoker/variant-catalog/internal/store"
)

type queryFixture struct {
	store       *store.MemoryStore
	query       *QueryService
	red, blue   *models.Color
	withVariant *models.Product
	imageOnly   *models.Product
	standard    *models.Product
}

// newQueryFixture builds a product with a red variant, a product that only
// has a red image, and a standard product without either.
func newQueryFixture(t *testing.T) *queryFixture {
	t.Helper()
	ctx := context.Background()
	s := store.NewMemoryStore()
	f := &queryFixture{store: s, query: NewQueryService(s)}

	f.red = &models.Color{Name: "Red"}
	f.blue = &models.Color{Name: "Blue"}
	require.NoError(t, s.CreateColor(ctx, f.red))
	require.NoError(t, s.CreateColor(ctx, f.blue))

	f.withVariant = &models.Product{Name: "hoodie", IsVariant: true}
	f.imageOnly = &models.Product{Name: "scarf", IsVariant: true}
	f.standard = &models.Product{Name: "mug"}
	for _, p := range []*models.Product{f.withVariant, f.imageOnly, f.standard} {
		require.NoError(t, s.CreateProduct(ctx, p))
	}

	for _, p := range []*models.Product{f.withVariant, f.imageOnly} {
		require.NoError(t, s.CreateImage(ctx, &models.ProductImage{ProductID: p.ID, ColorID: &f.red.ID, ImageURL: "/red.jpg"}))
	}
	require.NoError(t, s.CreateImage(ctx, &models.ProductImage{ProductID: f.withVariant.ID, ImageURL: "/plain.jpg"}))
	require.NoError(t, s.CreateVariant(ctx, &models.ProductVariant{ProductID: f.withVariant.ID, ColorID: f.red.ID, Size: "M"}))
	return f
}

func productIDs(products []models.Product) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestListProductsColorFilterUsesVariants(t *testing.T) {
	f := newQueryFixture(t)
	ctx := context.Background()

	all, err := f.query.ListProducts(ctx, ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{f.withVariant.ID, f.imageOnly.ID, f.standard.ID}, productIDs(all))

	red, err := f.query.ListProducts(ctx, ProductFilter{ColorID: &f.red.ID})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{f.withVariant.ID}, productIDs(red))
	require.Len(t, red[0].Variants, 1)
	assert.Len(t, red[0].Images, 2)

	blue, err := f.query.ListProducts(ctx, ProductFilter{ColorID: &f.blue.ID})
	require.NoError(t, err)
	assert.Empty(t, blue)
}

func TestGetProduct(t *testing.T) {
	f := newQueryFixture(t)
	ctx := context.Background()

	product, err := f.query.GetProduct(ctx, f.withVariant.ID)
	require.NoError(t, err)
	assert.Len(t, product.Variants, 1)
	assert.Len(t, product.Images, 2)

	_, err = f.query.GetProduct(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListVariants(t *testing.T) {
	f := newQueryFixture(t)
	ctx := context.Background()

	variants, err := f.query.ListVariants(ctx, f.withVariant.ID)
	require.NoError(t, err)
	require.Len(t, variants, 1)
	require.NotNil(t, variants[0].Color)
	assert.Equal(t, "Red", variants[0].Color.Name)
	assert.Empty(t, variants[0].Images)

	none, err := f.query.ListVariants(ctx, f.standard.ID)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestListImagesColorFilter(t *testing.T) {
	f := newQueryFixture(t)
	ctx := context.Background()

	all, err := f.query.ListImages(ctx, f.withVariant.ID, ImageFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	red, err := f.query.ListImages(ctx, f.withVariant.ID, ImageFilter{ColorID: &f.red.ID})
	require.NoError(t, err)
	require.Len(t, red, 1)
	assert.Equal(t, "/red.jpg", red[0].ImageURL)

	blue, err := f.query.ListImages(ctx, f.withVariant.ID, ImageFilter{ColorID: &f.blue.ID})
	require.NoError(t, err)
	assert.Empty(t, blue)
}

func TestListColors(t *testing.T) {
	f := newQueryFixture(t)

	colors, err := f.query.ListColors(context.Background())
	require.NoError(t, err)
	require.Len(t, colors, 2)
	assert.Equal(t, "Red", colors[0].Name)
	assert.Equal(t, "Blue", colors[1].Name)
}
