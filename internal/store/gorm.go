// internal/store/gorm.go
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/javajoker/variant-catalog/internal/database"
	"github.com/javajoker/variant-catalog/internal/models"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// GormStore persists catalog records in PostgreSQL through gorm.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Products

func (s *GormStore) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error; err != nil {
		return translateError("create product", err)
	}
	return nil
}

func (s *GormStore) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, translateError("find product", err)
	}
	return &product, nil
}

func (s *GormStore) FindProductWithRelations(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.withProductRelations(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, translateError("find product", err)
	}
	return &product, nil
}

func (s *GormStore) FindProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.withProductRelations(ctx).Order("created_at ASC").Find(&products).Error; err != nil {
		return nil, translateError("fetch products", err)
	}
	return products, nil
}

func (s *GormStore) ProductBarcodeExists(ctx context.Context, barcode string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("barcode = ?", barcode).Count(&count).Error; err != nil {
		return false, translateError("check product barcode", err)
	}
	return count > 0, nil
}

func (s *GormStore) UpdateProduct(ctx context.Context, product *models.Product, patch models.ProductPatch) error {
	updates := patch.Updates()
	if len(updates) == 0 {
		return nil
	}

	db := s.db.WithContext(ctx)
	if err := db.Model(product).Updates(updates).Error; err != nil {
		return translateError("update product", err)
	}

	if err := db.First(product, "id = ?", product.ID).Error; err != nil {
		return translateError("reload product", err)
	}
	return nil
}

func (s *GormStore) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		// Explicit child deletes keep the cascade intact on schemas created
		// before the foreign keys carried ON DELETE CASCADE.
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return translateError("delete product images", err)
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductVariant{}).Error; err != nil {
			return translateError("delete product variants", err)
		}

		result := tx.Delete(&models.Product{}, "id = ?", id)
		if result.Error != nil {
			return translateError("delete product", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *GormStore) withProductRelations(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") })
}

// Variants

func (s *GormStore) CreateVariant(ctx context.Context, variant *models.ProductVariant) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(variant).Error; err != nil {
		return translateError("create variant", err)
	}
	return nil
}

func (s *GormStore) FindVariantByID(ctx context.Context, id uuid.UUID) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	if err := s.db.WithContext(ctx).First(&variant, "id = ?", id).Error; err != nil {
		return nil, translateError("find variant", err)
	}
	return &variant, nil
}

func (s *GormStore) FindVariantsByProduct(ctx context.Context, productID uuid.UUID) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	if err := s.db.WithContext(ctx).
		Preload("Color").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&variants).Error; err != nil {
		return nil, translateError("fetch variants", err)
	}
	return variants, nil
}

func (s *GormStore) VariantBarcodeExists(ctx context.Context, barcode string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.ProductVariant{}).
		Where("barcode = ?", barcode).Count(&count).Error; err != nil {
		return false, translateError("check variant barcode", err)
	}
	return count > 0, nil
}

func (s *GormStore) VariantCombinationExists(ctx context.Context, productID, colorID uuid.UUID, size string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.ProductVariant{}).
		Where("product_id = ? AND color_id = ? AND size = ?", productID, colorID, size).
		Count(&count).Error; err != nil {
		return false, translateError("check variant combination", err)
	}
	return count > 0, nil
}

func (s *GormStore) UpdateVariant(ctx context.Context, variant *models.ProductVariant, patch models.VariantPatch) error {
	updates := patch.Updates()
	if len(updates) == 0 {
		return nil
	}

	db := s.db.WithContext(ctx)
	if err := db.Model(variant).Updates(updates).Error; err != nil {
		return translateError("update variant", err)
	}

	if err := db.First(variant, "id = ?", variant.ID).Error; err != nil {
		return translateError("reload variant", err)
	}
	return nil
}

func (s *GormStore) DeleteVariant(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.ProductVariant{}, "id = ?", id)
	if result.Error != nil {
		return translateError("delete variant", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Colors

func (s *GormStore) CreateColor(ctx context.Context, color *models.Color) error {
	if err := s.db.WithContext(ctx).Create(color).Error; err != nil {
		return translateError("create color", err)
	}
	return nil
}

func (s *GormStore) FindColors(ctx context.Context) ([]models.Color, error) {
	var colors []models.Color
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&colors).Error; err != nil {
		return nil, translateError("fetch colors", err)
	}
	return colors, nil
}

// Images

func (s *GormStore) CreateImage(ctx context.Context, image *models.ProductImage) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(image).Error; err != nil {
		return translateError("create image", err)
	}
	return nil
}

func (s *GormStore) FindImages(ctx context.Context, productID uuid.UUID, colorID *uuid.UUID) ([]models.ProductImage, error) {
	query := s.db.WithContext(ctx).Where("product_id = ?", productID)
	if colorID != nil {
		query = query.Where("color_id = ?", *colorID)
	}

	var images []models.ProductImage
	if err := query.Order("created_at ASC").Find(&images).Error; err != nil {
		return nil, translateError("fetch images", err)
	}
	return images, nil
}

func (s *GormStore) ColorImageExists(ctx context.Context, productID, colorID uuid.UUID) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.ProductImage{}).
		Where("product_id = ? AND color_id = ?", productID, colorID).
		Count(&count).Error; err != nil {
		return false, translateError("check color images", err)
	}
	return count > 0, nil
}

func translateError(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &ConstraintError{Kind: UniqueConstraint, Constraint: pgErr.ConstraintName, Err: err}
		case pgForeignKeyViolation:
			return &ConstraintError{Kind: ForeignKeyConstraint, Constraint: pgErr.ConstraintName, Err: err}
		}
	}

	return fmt.Errorf("failed to %s: %w", op, err)
}
