// internal/store/memory.go
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/javajoker/variant-catalog/internal/models"
)

type memoryRecord[T any] struct {
	seq    uint64
	record T
}

// MemoryStore is a mutex-guarded in-memory Store. It enforces the same unique
// indexes, foreign keys and cascades as the PostgreSQL schema, which makes it
// suitable for tests and for running the service without a database.
type MemoryStore struct {
	mu       sync.RWMutex
	seq      uint64
	products map[uuid.UUID]memoryRecord[models.Product]
	variants map[uuid.UUID]memoryRecord[models.ProductVariant]
	colors   map[uuid.UUID]memoryRecord[models.Color]
	images   map[uuid.UUID]memoryRecord[models.ProductImage]
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[uuid.UUID]memoryRecord[models.Product]),
		variants: make(map[uuid.UUID]memoryRecord[models.ProductVariant]),
		colors:   make(map[uuid.UUID]memoryRecord[models.Color]),
		images:   make(map[uuid.UUID]memoryRecord[models.ProductImage]),
		now:      time.Now,
	}
}

func (s *MemoryStore) stamp(base *models.BaseModel) uint64 {
	s.seq++
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	now := s.now()
	base.CreatedAt = now
	base.UpdatedAt = now
	return s.seq
}

// Products

func (s *MemoryStore) CreateProduct(ctx context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.Barcode = models.NormalizeBarcode(product.Barcode)
	if product.Barcode != nil && s.productBarcodeTaken(*product.Barcode, uuid.Nil) {
		return uniqueViolation(models.IndexProductBarcode)
	}

	seq := s.stamp(&product.BaseModel)
	record := *product
	record.Variants, record.Images = nil, nil
	s.products[product.ID] = memoryRecord[models.Product]{seq: seq, record: record}
	return nil
}

func (s *MemoryStore) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	product := entry.record
	return &product, nil
}

func (s *MemoryStore) FindProductWithRelations(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	product := s.withRelations(entry.record)
	return &product, nil
}

func (s *MemoryStore) FindProducts(ctx context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := sortedRecords(s.products)
	products := make([]models.Product, 0, len(entries))
	for _, product := range entries {
		products = append(products, s.withRelations(product))
	}
	return products, nil
}

func (s *MemoryStore) ProductBarcodeExists(ctx context.Context, barcode string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.productBarcodeTaken(barcode, uuid.Nil), nil
}

func (s *MemoryStore) UpdateProduct(ctx context.Context, product *models.Product, patch models.ProductPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.products[product.ID]
	if !ok {
		return ErrNotFound
	}

	updated := entry.record
	patch.Apply(&updated)
	if updated.Barcode != nil && s.productBarcodeTaken(*updated.Barcode, updated.ID) {
		return uniqueViolation(models.IndexProductBarcode)
	}
	updated.UpdatedAt = s.now()

	entry.record = updated
	s.products[updated.ID] = entry
	*product = updated
	return nil
}

func (s *MemoryStore) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}

	for imageID, entry := range s.images {
		if entry.record.ProductID == id {
			delete(s.images, imageID)
		}
	}
	for variantID, entry := range s.variants {
		if entry.record.ProductID == id {
			s.deleteVariantLocked(variantID)
		}
	}
	delete(s.products, id)
	return nil
}

func (s *MemoryStore) productBarcodeTaken(barcode string, except uuid.UUID) bool {
	for id, entry := range s.products {
		if id != except && entry.record.Barcode != nil && *entry.record.Barcode == barcode {
			return true
		}
	}
	return false
}

func (s *MemoryStore) withRelations(product models.Product) models.Product {
	product.Variants = []models.ProductVariant{}
	for _, variant := range sortedRecords(s.variants) {
		if variant.ProductID == product.ID {
			product.Variants = append(product.Variants, variant)
		}
	}
	product.Images = s.imagesWhere(func(image models.ProductImage) bool {
		return image.ProductID == product.ID
	})
	return product
}

// Variants

func (s *MemoryStore) CreateVariant(ctx context.Context, variant *models.ProductVariant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[variant.ProductID]; !ok {
		return foreignKeyViolation("fk_products_variants")
	}
	if _, ok := s.colors[variant.ColorID]; !ok {
		return foreignKeyViolation("fk_product_variants_color")
	}

	variant.Barcode = models.NormalizeBarcode(variant.Barcode)
	if variant.Barcode != nil && s.variantBarcodeTaken(*variant.Barcode, uuid.Nil) {
		return uniqueViolation(models.IndexVariantBarcode)
	}
	if s.combinationTaken(variant.ProductID, variant.ColorID, variant.Size, uuid.Nil) {
		return uniqueViolation(models.IndexVariantCombination)
	}

	seq := s.stamp(&variant.BaseModel)
	record := *variant
	record.Color, record.Images = nil, nil
	s.variants[variant.ID] = memoryRecord[models.ProductVariant]{seq: seq, record: record}
	return nil
}

func (s *MemoryStore) FindVariantByID(ctx context.Context, id uuid.UUID) (*models.ProductVariant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.variants[id]
	if !ok {
		return nil, ErrNotFound
	}
	variant := entry.record
	return &variant, nil
}

func (s *MemoryStore) FindVariantsByProduct(ctx context.Context, productID uuid.UUID) ([]models.ProductVariant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	variants := []models.ProductVariant{}
	for _, variant := range sortedRecords(s.variants) {
		if variant.ProductID != productID {
			continue
		}
		if entry, ok := s.colors[variant.ColorID]; ok {
			color := entry.record
			variant.Color = &color
		}
		variantID := variant.ID
		variant.Images = s.imagesWhere(func(image models.ProductImage) bool {
			return image.VariantID != nil && *image.VariantID == variantID
		})
		variants = append(variants, variant)
	}
	return variants, nil
}

func (s *MemoryStore) VariantBarcodeExists(ctx context.Context, barcode string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.variantBarcodeTaken(barcode, uuid.Nil), nil
}

func (s *MemoryStore) VariantCombinationExists(ctx context.Context, productID, colorID uuid.UUID, size string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.combinationTaken(productID, colorID, size, uuid.Nil), nil
}

func (s *MemoryStore) UpdateVariant(ctx context.Context, variant *models.ProductVariant, patch models.VariantPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.variants[variant.ID]
	if !ok {
		return ErrNotFound
	}

	updated := entry.record
	patch.Apply(&updated)
	if _, ok := s.colors[updated.ColorID]; !ok {
		return foreignKeyViolation("fk_product_variants_color")
	}
	if updated.Barcode != nil && s.variantBarcodeTaken(*updated.Barcode, updated.ID) {
		return uniqueViolation(models.IndexVariantBarcode)
	}
	if s.combinationTaken(updated.ProductID, updated.ColorID, updated.Size, updated.ID) {
		return uniqueViolation(models.IndexVariantCombination)
	}
	updated.UpdatedAt = s.now()

	entry.record = updated
	s.variants[updated.ID] = entry
	*variant = updated
	return nil
}

func (s *MemoryStore) DeleteVariant(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.variants[id]; !ok {
		return ErrNotFound
	}
	s.deleteVariantLocked(id)
	return nil
}

func (s *MemoryStore) deleteVariantLocked(id uuid.UUID) {
	for imageID, entry := range s.images {
		if entry.record.VariantID != nil && *entry.record.VariantID == id {
			delete(s.images, imageID)
		}
	}
	delete(s.variants, id)
}

func (s *MemoryStore) variantBarcodeTaken(barcode string, except uuid.UUID) bool {
	for id, entry := range s.variants {
		if id != except && entry.record.Barcode != nil && *entry.record.Barcode == barcode {
			return true
		}
	}
	return false
}

func (s *MemoryStore) combinationTaken(productID, colorID uuid.UUID, size string, except uuid.UUID) bool {
	for id, entry := range s.variants {
		v := entry.record
		if id != except && v.ProductID == productID && v.ColorID == colorID && v.Size == size {
			return true
		}
	}
	return false
}

// Colors

func (s *MemoryStore) CreateColor(ctx context.Context, color *models.Color) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.stamp(&color.BaseModel)
	s.colors[color.ID] = memoryRecord[models.Color]{seq: seq, record: *color}
	return nil
}

func (s *MemoryStore) FindColors(ctx context.Context) ([]models.Color, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedRecords(s.colors), nil
}

// Images

func (s *MemoryStore) CreateImage(ctx context.Context, image *models.ProductImage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[image.ProductID]; !ok {
		return foreignKeyViolation("fk_products_images")
	}
	if image.ColorID != nil {
		if _, ok := s.colors[*image.ColorID]; !ok {
			return foreignKeyViolation("fk_product_images_color")
		}
	}
	if image.VariantID != nil {
		if _, ok := s.variants[*image.VariantID]; !ok {
			return foreignKeyViolation("fk_product_variants_images")
		}
	}

	seq := s.stamp(&image.BaseModel)
	record := *image
	record.Color = nil
	s.images[image.ID] = memoryRecord[models.ProductImage]{seq: seq, record: record}
	return nil
}

func (s *MemoryStore) FindImages(ctx context.Context, productID uuid.UUID, colorID *uuid.UUID) ([]models.ProductImage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.imagesWhere(func(image models.ProductImage) bool {
		if image.ProductID != productID {
			return false
		}
		return colorID == nil || (image.ColorID != nil && *image.ColorID == *colorID)
	}), nil
}

func (s *MemoryStore) ColorImageExists(ctx context.Context, productID, colorID uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, entry := range s.images {
		image := entry.record
		if image.ProductID == productID && image.ColorID != nil && *image.ColorID == colorID {
			return true, nil
		}
	}
	return false, nil
}

// DeleteImage removes a single image. It is not part of Store; tests use it
// to show that variant checks only run at creation time.
func (s *MemoryStore) DeleteImage(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.images[id]; !ok {
		return ErrNotFound
	}
	delete(s.images, id)
	return nil
}

func (s *MemoryStore) imagesWhere(match func(models.ProductImage) bool) []models.ProductImage {
	images := []models.ProductImage{}
	for _, image := range sortedRecords(s.images) {
		if match(image) {
			images = append(images, image)
		}
	}
	return images
}

func sortedRecords[T any](records map[uuid.UUID]memoryRecord[T]) []T {
	entries := make([]memoryRecord[T], 0, len(records))
	for _, entry := range records {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]T, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.record)
	}
	return out
}

func uniqueViolation(constraint string) error {
	return &ConstraintError{Kind: UniqueConstraint, Constraint: constraint}
}

func foreignKeyViolation(constraint string) error {
	return &ConstraintError{Kind: ForeignKeyConstraint, Constraint: constraint}
}
