// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/variant-catalog/internal/catalog"
	"github.com/javajoker/variant-catalog/internal/models"
	"github.com/javajoker/variant-catalog/internal/store"
)

// CatalogService runs every catalog write through the consistency engine
// before handing it to the store.
type CatalogService struct {
	store   store.Store
	engine  *catalog.Engine
	storage *StorageService
}

type CreateProductRequest struct {
	Name        string           `json:"name" validate:"max=255"`
	Description string           `json:"description"`
	IsVariant   bool             `json:"is_variant"`
	Price       *decimal.Decimal `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock       *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Barcode     *string          `json:"barcode,omitempty" validate:"omitempty,max=100"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,max=255"`
	Description *string          `json:"description,omitempty"`
	IsVariant   *bool            `json:"is_variant,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock       *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Barcode     *string          `json:"barcode,omitempty" validate:"omitempty,max=100"`
}

type CreateVariantRequest struct {
	ColorID uuid.UUID        `json:"color_id" validate:"required"`
	Size    string           `json:"size" validate:"required,max=50"`
	Price   *decimal.Decimal `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock   *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Barcode *string          `json:"barcode,omitempty" validate:"omitempty,max=100"`
}

type UpdateVariantRequest struct {
	ColorID *uuid.UUID       `json:"color_id,omitempty"`
	Size    *string          `json:"size,omitempty" validate:"omitempty,min=1,max=50"`
	Price   *decimal.Decimal `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock   *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Barcode *string          `json:"barcode,omitempty" validate:"omitempty,max=100"`
}

type CreateColorRequest struct {
	Name    string `json:"name" validate:"max=100"`
	HexCode string `json:"hex_code" validate:"max=20"`
}

type CreateImageRequest struct {
	VariantID *uuid.UUID `json:"variant_id,omitempty"`
	ColorID   *uuid.UUID `json:"color_id,omitempty"`
	ImageURL  string     `json:"image_url" validate:"required"`
}

func NewCatalogService(s store.Store, engine *catalog.Engine, storage *StorageService) *CatalogService {
	return &CatalogService{
		store:   s,
		engine:  engine,
		storage: storage,
	}
}

// Products

func (s *CatalogService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	product, err := s.engine.ValidateProductCreate(ctx, &models.Product{
		Name:        req.Name,
		Description: req.Description,
		IsVariant:   req.IsVariant,
		Price:       req.Price,
		Stock:       req.Stock,
		Barcode:     req.Barcode,
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateProduct(ctx, product); err != nil {
		return nil, s.storeFailure("create product", err, "product")
	}

	logrus.WithFields(logrus.Fields{
		"product_id": product.ID,
		"is_variant": product.IsVariant,
	}).Info("Product created")
	return product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	existing, err := s.store.FindProductByID(ctx, id)
	if err != nil {
		return nil, s.storeFailure("find product", err, "product")
	}

	patch := models.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		IsVariant:   req.IsVariant,
		Price:       req.Price,
		Stock:       req.Stock,
		Barcode:     req.Barcode,
	}
	if err := s.engine.ValidateProductUpdate(ctx, existing, patch); err != nil {
		return nil, err
	}

	if err := s.store.UpdateProduct(ctx, existing, patch); err != nil {
		return nil, s.storeFailure("update product", err, "product")
	}

	logrus.WithField("product_id", existing.ID).Info("Product updated")
	return existing, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		return s.storeFailure("delete product", err, "product")
	}

	logrus.WithField("product_id", id).Info("Product deleted")
	return nil
}

// Variants

func (s *CatalogService) CreateVariant(ctx context.Context, productID uuid.UUID, req *CreateVariantRequest) (*models.ProductVariant, error) {
	variant, err := s.engine.ValidateVariantCreate(ctx, productID, &models.ProductVariant{
		ColorID: req.ColorID,
		Size:    req.Size,
		Price:   req.Price,
		Stock:   req.Stock,
		Barcode: req.Barcode,
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateVariant(ctx, variant); err != nil {
		return nil, s.storeFailure("create variant", err, "variant")
	}

	logrus.WithFields(logrus.Fields{
		"product_id": variant.ProductID,
		"variant_id": variant.ID,
		"color_id":   variant.ColorID,
		"size":       variant.Size,
	}).Info("Variant created")
	return variant, nil
}

func (s *CatalogService) UpdateVariant(ctx context.Context, id uuid.UUID, req *UpdateVariantRequest) (*models.ProductVariant, error) {
	existing, err := s.store.FindVariantByID(ctx, id)
	if err != nil {
		return nil, s.storeFailure("find variant", err, "variant")
	}

	patch := models.VariantPatch{
		ColorID: req.ColorID,
		Size:    req.Size,
		Price:   req.Price,
		Stock:   req.Stock,
		Barcode: req.Barcode,
	}
	if err := s.engine.ValidateVariantUpdate(ctx, existing, patch); err != nil {
		return nil, err
	}

	if err := s.store.UpdateVariant(ctx, existing, patch); err != nil {
		return nil, s.storeFailure("update variant", err, "variant")
	}

	logrus.WithField("variant_id", existing.ID).Info("Variant updated")
	return existing, nil
}

func (s *CatalogService) DeleteVariant(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteVariant(ctx, id); err != nil {
		return s.storeFailure("delete variant", err, "variant")
	}

	logrus.WithField("variant_id", id).Info("Variant deleted")
	return nil
}

// Colors

func (s *CatalogService) CreateColor(ctx context.Context, req *CreateColorRequest) (*models.Color, error) {
	color, err := s.engine.ValidateColorCreate(&models.Color{
		Name:    req.Name,
		HexCode: req.HexCode,
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateColor(ctx, color); err != nil {
		return nil, s.storeFailure("create color", err, "color")
	}
	return color, nil
}

// Images

func (s *CatalogService) AttachImage(ctx context.Context, productID uuid.UUID, req *CreateImageRequest) (*models.ProductImage, error) {
	image, err := s.engine.ValidateImageCreate(ctx, productID, &models.ProductImage{
		VariantID: req.VariantID,
		ColorID:   req.ColorID,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		return nil, err
	}

	return s.saveImage(ctx, image)
}

// UploadProductImage stores the uploaded file and attaches it to the
// product. The engine runs before the file is written so a rejected request
// leaves nothing behind in storage.
func (s *CatalogService) UploadProductImage(ctx context.Context, productID uuid.UUID, colorID *uuid.UUID, header *multipart.FileHeader) (*models.ProductImage, error) {
	image, err := s.engine.ValidateImageCreate(ctx, productID, &models.ProductImage{ColorID: colorID})
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, catalog.MissingUploadFile()
	}

	result, err := s.storage.UploadHeader(header, s.storage.GetDefaultUploadOptions(FolderProductImages))
	if err != nil {
		return nil, err
	}
	image.ImageURL = result.URL

	saved, err := s.saveImage(ctx, image)
	if err != nil {
		if cleanupErr := s.storage.DeleteFile(result.Key); cleanupErr != nil {
			logrus.WithError(cleanupErr).WithField("key", result.Key).Warn("Failed to remove orphaned upload")
		}
		return nil, err
	}
	return saved, nil
}

// UploadFile stores a file without creating any catalog record.
func (s *CatalogService) UploadFile(ctx context.Context, header *multipart.FileHeader) (*UploadResult, error) {
	if header == nil {
		return nil, catalog.MissingUploadFile()
	}
	return s.storage.UploadHeader(header, s.storage.GetDefaultUploadOptions(FolderGeneral))
}

func (s *CatalogService) saveImage(ctx context.Context, image *models.ProductImage) (*models.ProductImage, error) {
	if err := s.store.CreateImage(ctx, image); err != nil {
		return nil, s.storeFailure("create image", err, "image")
	}

	logrus.WithFields(logrus.Fields{
		"product_id": image.ProductID,
		"image_id":   image.ID,
	}).Info("Image attached")
	return image, nil
}

// storeFailure maps constraint and lookup failures onto violations and logs
// everything else as an infrastructure error.
func (s *CatalogService) storeFailure(op string, err error, resource string) error {
	mapped := catalog.FromStoreError(err, resource)
	if _, ok := catalog.AsViolation(mapped); ok {
		return mapped
	}
	if !errors.Is(err, context.Canceled) {
		logrus.WithError(err).WithField("operation", op).Error("Catalog store failure")
	}
	return mapped
}
