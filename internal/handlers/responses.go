// internal/handlers/responses.go
package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/javajoker/variant-catalog/internal/models"
)

// Output field names are declared here once per entity; the gorm models keep
// their snake_case JSON for storage-facing code.

type colorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	HexCode   string    `json:"hexCode"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type imageResponse struct {
	ID        uuid.UUID  `json:"id"`
	ProductID uuid.UUID  `json:"productId"`
	VariantID *uuid.UUID `json:"variantId"`
	ColorID   *uuid.UUID `json:"colorId"`
	ImageURL  string     `json:"imageUrl"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type variantResponse struct {
	ID        uuid.UUID        `json:"id"`
	ProductID uuid.UUID        `json:"productId"`
	ColorID   uuid.UUID        `json:"colorId"`
	Size      string           `json:"size"`
	Price     *decimal.Decimal `json:"price"`
	Stock     *int             `json:"stock"`
	Barcode   *string          `json:"barcode"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

type variantDetailResponse struct {
	variantResponse
	Color         *colorResponse  `json:"color"`
	ProductImages []imageResponse `json:"productImages"`
}

type productResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	IsVariant   bool             `json:"isVariant"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Barcode     *string          `json:"barcode"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type productDetailResponse struct {
	productResponse
	ProductVariants []variantResponse `json:"productVariants"`
	ProductImages   []imageResponse   `json:"productImages"`
}

type uploadResponse struct {
	URL string `json:"url"`
}

func newColorResponse(color *models.Color) colorResponse {
	return colorResponse{
		ID:        color.ID,
		Name:      color.Name,
		HexCode:   color.HexCode,
		CreatedAt: color.CreatedAt,
		UpdatedAt: color.UpdatedAt,
	}
}

func newColorResponses(colors []models.Color) []colorResponse {
	out := make([]colorResponse, 0, len(colors))
	for i := range colors {
		out = append(out, newColorResponse(&colors[i]))
	}
	return out
}

func newImageResponse(image *models.ProductImage) imageResponse {
	return imageResponse{
		ID:        image.ID,
		ProductID: image.ProductID,
		VariantID: image.VariantID,
		ColorID:   image.ColorID,
		ImageURL:  image.ImageURL,
		CreatedAt: image.CreatedAt,
		UpdatedAt: image.UpdatedAt,
	}
}

func newImageResponses(images []models.ProductImage) []imageResponse {
	out := make([]imageResponse, 0, len(images))
	for i := range images {
		out = append(out, newImageResponse(&images[i]))
	}
	return out
}

func newVariantResponse(variant *models.ProductVariant) variantResponse {
	return variantResponse{
		ID:        variant.ID,
		ProductID: variant.ProductID,
		ColorID:   variant.ColorID,
		Size:      variant.Size,
		Price:     variant.Price,
		Stock:     variant.Stock,
		Barcode:   variant.Barcode,
		CreatedAt: variant.CreatedAt,
		UpdatedAt: variant.UpdatedAt,
	}
}

func newVariantDetailResponses(variants []models.ProductVariant) []variantDetailResponse {
	out := make([]variantDetailResponse, 0, len(variants))
	for i := range variants {
		detail := variantDetailResponse{
			variantResponse: newVariantResponse(&variants[i]),
			ProductImages:   newImageResponses(variants[i].Images),
		}
		if variants[i].Color != nil {
			color := newColorResponse(variants[i].Color)
			detail.Color = &color
		}
		out = append(out, detail)
	}
	return out
}

func newProductResponse(product *models.Product) productResponse {
	return productResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		IsVariant:   product.IsVariant,
		Price:       product.Price,
		Stock:       product.Stock,
		Barcode:     product.Barcode,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func newProductDetailResponse(product *models.Product) productDetailResponse {
	variants := make([]variantResponse, 0, len(product.Variants))
	for i := range product.Variants {
		variants = append(variants, newVariantResponse(&product.Variants[i]))
	}

	return productDetailResponse{
		productResponse: newProductResponse(product),
		ProductVariants: variants,
		ProductImages:   newImageResponses(product.Images),
	}
}

func newProductDetailResponses(products []models.Product) []productDetailResponse {
	out := make([]productDetailResponse, 0, len(products))
	for i := range products {
		out = append(out, newProductDetailResponse(&products[i]))
	}
	return out
}
