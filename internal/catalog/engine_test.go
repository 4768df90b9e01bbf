// internal/catalog/engine_test.go
package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/javajoker/variant-catalog/internal/models"
	"github.com/javajoker/variant-catalog/internal/store"
)

type EngineTestSuite struct {
	suite.Suite
	ctx    context.Context
	store  *store.MemoryStore
	engine *Engine
}

func (suite *EngineTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = store.NewMemoryStore()
	suite.engine = NewEngine(suite.store)
}

func (suite *EngineTestSuite) createColor(name string) *models.Color {
	color := &models.Color{Name: name}
	require.NoError(suite.T(), suite.store.CreateColor(suite.ctx, color))
	return color
}

func (suite *EngineTestSuite) createProduct(isVariant bool, barcode string) *models.Product {
	product := &models.Product{Name: "product", IsVariant: isVariant, Barcode: models.StringPtr(barcode)}
	require.NoError(suite.T(), suite.store.CreateProduct(suite.ctx, product))
	return product
}

func (suite *EngineTestSuite) createColorImage(productID, colorID uuid.UUID) *models.ProductImage {
	image := &models.ProductImage{ProductID: productID, ColorID: &colorID, ImageURL: "/x.jpg"}
	require.NoError(suite.T(), suite.store.CreateImage(suite.ctx, image))
	return image
}

// createVariant validates and persists a variant the way the service does.
func (suite *EngineTestSuite) createVariant(productID uuid.UUID, input *models.ProductVariant) (*models.ProductVariant, error) {
	variant, err := suite.engine.ValidateVariantCreate(suite.ctx, productID, input)
	if err != nil {
		return nil, err
	}
	return variant, suite.store.CreateVariant(suite.ctx, variant)
}

func (suite *EngineTestSuite) TestProductCreateRejectsUsedBarcode() {
	suite.createProduct(false, "ABC-1")

	for attempt := 0; attempt < 3; attempt++ {
		_, err := suite.engine.ValidateProductCreate(suite.ctx, &models.Product{Name: "again", Barcode: models.StringPtr("ABC-1")})
		assert.ErrorIs(suite.T(), err, ErrDuplicateBarcode)
	}
}

func (suite *EngineTestSuite) TestProductCreateIgnoresEmptyBarcode() {
	suite.createProduct(false, "")

	product, err := suite.engine.ValidateProductCreate(suite.ctx, &models.Product{Name: "blank", Barcode: models.StringPtr("  ")})
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), product.Barcode)
}

func (suite *EngineTestSuite) TestProductBarcodeIsNotSharedWithVariants() {
	product := suite.createProduct(true, "")
	red := suite.createColor("Red")
	suite.createColorImage(product.ID, red.ID)
	_, err := suite.createVariant(product.ID, &models.ProductVariant{ColorID: red.ID, Size: "M", Barcode: models.StringPtr("SHARED")})
	require.NoError(suite.T(), err)

	_, err = suite.engine.ValidateProductCreate(suite.ctx, &models.Product{Name: "other", Barcode: models.StringPtr("SHARED")})
	assert.NoError(suite.T(), err)
}

func (suite *EngineTestSuite) TestProductUpdateChecksOnlyChangedBarcode() {
	existing := suite.createProduct(false, "KEEP")
	suite.createProduct(false, "TAKEN")

	err := suite.engine.ValidateProductUpdate(suite.ctx, existing, models.ProductPatch{
		Name:    models.StringPtr("renamed"),
		Barcode: models.StringPtr("KEEP"),
	})
	require.NoError(suite.T(), err)

	err = suite.engine.ValidateProductUpdate(suite.ctx, existing, models.ProductPatch{Barcode: models.StringPtr("TAKEN")})
	assert.ErrorIs(suite.T(), err, ErrDuplicateBarcode)

	err = suite.engine.ValidateProductUpdate(suite.ctx, existing, models.ProductPatch{Barcode: models.StringPtr("FRESH")})
	assert.NoError(suite.T(), err)
}

func (suite *EngineTestSuite) TestVariantCreateUnknownProduct() {
	_, err := suite.engine.ValidateVariantCreate(suite.ctx, uuid.New(), &models.ProductVariant{ColorID: uuid.New(), Size: "M"})
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *EngineTestSuite) TestVariantCreateOnStandardProductAlwaysRejected() {
	product := suite.createProduct(false, "")
	red := suite.createColor("Red")
	suite.createColorImage(product.ID, red.ID)

	inputs := []*models.ProductVariant{
		{ColorID: red.ID, Size: "M"},
		{ColorID: uuid.New(), Size: ""},
		{ColorID: red.ID, Size: "XL", Barcode: models.StringPtr("NEW")},
	}
	for _, input := range inputs {
		_, err := suite.engine.ValidateVariantCreate(suite.ctx, product.ID, input)
		assert.ErrorIs(suite.T(), err, ErrNotVariantCapable)
	}
}

func (suite *EngineTestSuite) TestVariantCreateGateOrder() {
	product := suite.createProduct(true, "")
	red := suite.createColor("Red")
	blue := suite.createColor("Blue")
	suite.createColorImage(product.ID, red.ID)
	_, err := suite.createVariant(product.ID, &models.ProductVariant{ColorID: red.ID, Size: "M", Barcode: models.StringPtr("RED-M")})
	require.NoError(suite.T(), err)

	// Barcode is checked before the combination.
	_, err = suite.engine.ValidateVariantCreate(suite.ctx, product.ID, &models.ProductVariant{ColorID: red.ID, Size: "M", Barcode: models.StringPtr("RED-M")})
	assert.ErrorIs(suite.T(), err, ErrDuplicateBarcode)

	// Combination is checked before the color image.
	_, err = suite.engine.ValidateVariantCreate(suite.ctx, product.ID, &models.ProductVariant{ColorID: red.ID, Size: "M"})
	assert.ErrorIs(suite.T(), err, ErrDuplicateVariantCombination)

	_, err = suite.engine.ValidateVariantCreate(suite.ctx, product.ID, &models.ProductVariant{ColorID: blue.ID, Size: "M"})
	assert.ErrorIs(suite.T(), err, ErrMissingColorImage)
}

func (suite *EngineTestSuite) TestVariantCreateNeedsImageForSameProduct() {
	product := suite.createProduct(true, "")
	other := suite.createProduct(true, "")
	red := suite.createColor("Red")
	suite.createColorImage(other.ID, red.ID)

	_, err := suite.engine.ValidateVariantCreate(suite.ctx, product.ID, &models.ProductVariant{ColorID: red.ID, Size: "M"})
	assert.ErrorIs(suite.T(), err, ErrMissingColorImage)
}

func (suite *EngineTestSuite) TestRedMediumScenario() {
	red := suite.createColor("Red")
	product := suite.createProduct(true, "")

	_, err := suite.createVariant(product.ID, &models.ProductVariant{ColorID: red.ID, Size: "M"})
	assert.ErrorIs(suite.T(), err, ErrMissingColorImage)

	image, err := suite.engine.ValidateImageCreate(suite.ctx, product.ID, &models.ProductImage{ColorID: &red.ID, ImageURL: "/x.jpg"})
	require.NoError(suite.T(), err)
	require.NoError(suite.T(), suite.store.CreateImage(suite.ctx, image))

	variant, err := suite.createVariant(product.ID, &models.ProductVariant{ColorID: red.ID, Size: "M"})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), product.ID, variant.ProductID)

	_, err = suite.createVariant(product.ID, &models.ProductVariant{ColorID: red.ID, Size: "M"})
	assert.ErrorIs(suite.T(), err, ErrDuplicateVariantCombination)
}

func (suite *EngineTestSuite) TestColorImageCheckedOnlyAtCreation() {
	product := suite.createProduct(true, "")
	red := suite.createColor("Red")
	image := suite.createColorImage(product.ID, red.ID)

	variant, err := suite.createVariant(product.ID, &models.ProductVariant{ColorID: red.ID, Size: "M"})
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.store.DeleteImage(suite.ctx, image.ID))

	stored, err := suite.store.FindVariantByID(suite.ctx, variant.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), variant.ID, stored.ID)

	_, err = suite.createVariant(product.ID, &models.ProductVariant{ColorID: red.ID, Size: "L"})
	assert.ErrorIs(suite.T(), err, ErrMissingColorImage)
}

func (suite *EngineTestSuite) TestVariantUpdateAcceptsColorAndSizeChanges() {
	product := suite.createProduct(true, "")
	red := suite.createColor("Red")
	blue := suite.createColor("Blue")
	suite.createColorImage(product.ID, red.ID)
	variant, err := suite.createVariant(product.ID, &models.ProductVariant{ColorID: red.ID, Size: "M"})
	require.NoError(suite.T(), err)
	_, err = suite.createVariant(product.ID, &models.ProductVariant{ColorID: red.ID, Size: "L", Barcode: models.StringPtr("RED-L")})
	require.NoError(suite.T(), err)

	// Blue has no image and red/L already exists; neither is re-checked here.
	err = suite.engine.ValidateVariantUpdate(suite.ctx, variant, models.VariantPatch{ColorID: &blue.ID})
	require.NoError(suite.T(), err)

	err = suite.engine.ValidateVariantUpdate(suite.ctx, variant, models.VariantPatch{Size: models.StringPtr("L")})
	assert.NoError(suite.T(), err)

	err = suite.engine.ValidateVariantUpdate(suite.ctx, variant, models.VariantPatch{Barcode: models.StringPtr("RED-L")})
	assert.ErrorIs(suite.T(), err, ErrDuplicateBarcode)
}

func (suite *EngineTestSuite) TestColorCreateAcceptsDuplicates() {
	suite.createColor("Red")

	color, err := suite.engine.ValidateColorCreate(&models.Color{Name: "Red", HexCode: "#FF0000"})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Red", color.Name)
}

func (suite *EngineTestSuite) TestImageCreate() {
	standard := suite.createProduct(false, "")
	variantMode := suite.createProduct(true, "")

	_, err := suite.engine.ValidateImageCreate(suite.ctx, uuid.New(), &models.ProductImage{ImageURL: "/x.jpg"})
	assert.ErrorIs(suite.T(), err, ErrNotFound)

	_, err = suite.engine.ValidateImageCreate(suite.ctx, variantMode.ID, &models.ProductImage{ImageURL: "/x.jpg"})
	assert.ErrorIs(suite.T(), err, ErrColorRequiredForVariantProduct)

	image, err := suite.engine.ValidateImageCreate(suite.ctx, standard.ID, &models.ProductImage{ImageURL: "/x.jpg"})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), standard.ID, image.ProductID)
	assert.Nil(suite.T(), image.ColorID)
	assert.Nil(suite.T(), image.VariantID)
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func TestFromStoreError(t *testing.T) {
	assert.Nil(t, FromStoreError(nil, "product"))

	err := FromStoreError(store.ErrNotFound, "variant")
	v, ok := AsViolation(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, v.Kind)
	assert.Equal(t, "variant", v.Resource)

	err = FromStoreError(&store.ConstraintError{Kind: store.UniqueConstraint, Constraint: models.IndexVariantBarcode}, "variant")
	assert.ErrorIs(t, err, ErrDuplicateBarcode)

	err = FromStoreError(&store.ConstraintError{Kind: store.UniqueConstraint, Constraint: models.IndexVariantCombination}, "variant")
	assert.ErrorIs(t, err, ErrDuplicateVariantCombination)

	err = FromStoreError(&store.ConstraintError{Kind: store.ForeignKeyConstraint, Constraint: "fk_products_images"}, "image")
	assert.ErrorIs(t, err, ErrValidationInput)

	err = FromStoreError(&store.ConstraintError{Kind: store.UniqueConstraint, Constraint: "idx_unknown"}, "image")
	_, ok = AsViolation(err)
	assert.False(t, ok)

	infra := errors.New("connection refused")
	assert.Same(t, infra, FromStoreError(infra, "product"))
}
