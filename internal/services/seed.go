// internal/services/seed.go
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type demoVariant struct {
	color   string
	size    string
	price   string
	stock   int
	barcode string
}

// SeedDemoData loads a small demo catalog through the regular write path so
// every record passes the engine. It does nothing once any product exists.
func (s *CatalogService) SeedDemoData(ctx context.Context) error {
	products, err := s.store.FindProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing products: %w", err)
	}
	if len(products) > 0 {
		logrus.WithField("products", len(products)).Info("Catalog not empty, skipping demo seed")
		return nil
	}

	logrus.Info("Seeding demo catalog...")

	colors := make(map[string]uuid.UUID)
	for _, req := range []CreateColorRequest{
		{Name: "Red", HexCode: "#FF0000"},
		{Name: "Blue", HexCode: "#0000FF"},
	} {
		color, err := s.CreateColor(ctx, &req)
		if err != nil {
			return fmt.Errorf("failed to seed color %s: %w", req.Name, err)
		}
		colors[req.Name] = color.ID
	}

	tshirt, err := s.CreateProduct(ctx, &CreateProductRequest{
		Name:        "Basic T-shirt",
		Description: "White cotton t-shirt",
		Price:       decimalPtr("99.99"),
		Stock:       intPtr(100),
		Barcode:     stringPtr("BASIC-TSHIRT-001"),
	})
	if err != nil {
		return fmt.Errorf("failed to seed standard product: %w", err)
	}
	if _, err := s.AttachImage(ctx, tshirt.ID, &CreateImageRequest{
		ImageURL: "/uploads/product-images/demo-basic-tshirt.jpg",
	}); err != nil {
		return fmt.Errorf("failed to seed standard product image: %w", err)
	}

	sweatshirt, err := s.CreateProduct(ctx, &CreateProductRequest{
		Name:        "Hooded Sweatshirt",
		Description: "Hooded sweatshirt in several colors and sizes",
		IsVariant:   true,
	})
	if err != nil {
		return fmt.Errorf("failed to seed variant product: %w", err)
	}

	// Color images first: a variant needs one for its color.
	for _, name := range []string{"Red", "Blue"} {
		colorID := colors[name]
		if _, err := s.AttachImage(ctx, sweatshirt.ID, &CreateImageRequest{
			ColorID:  &colorID,
			ImageURL: fmt.Sprintf("/uploads/product-images/demo-sweat-%s.jpg", strings.ToLower(name)),
		}); err != nil {
			return fmt.Errorf("failed to seed %s image: %w", name, err)
		}
	}

	var pinned uuid.UUID
	for _, v := range []demoVariant{
		{color: "Red", size: "M", price: "199.99", stock: 20, barcode: "SWEAT-RED-M"},
		{color: "Blue", size: "L", price: "209.99", stock: 15, barcode: "SWEAT-BLUE-L"},
		{color: "Red", size: "S", price: "189.99", stock: 10, barcode: "SWEAT-RED-S"},
	} {
		variant, err := s.CreateVariant(ctx, sweatshirt.ID, &CreateVariantRequest{
			ColorID: colors[v.color],
			Size:    v.size,
			Price:   decimalPtr(v.price),
			Stock:   intPtr(v.stock),
			Barcode: stringPtr(v.barcode),
		})
		if err != nil {
			return fmt.Errorf("failed to seed variant %s: %w", v.barcode, err)
		}
		pinned = variant.ID
	}

	red := colors["Red"]
	if _, err := s.AttachImage(ctx, sweatshirt.ID, &CreateImageRequest{
		VariantID: &pinned,
		ColorID:   &red,
		ImageURL:  "/uploads/product-images/demo-sweat-red-s.jpg",
	}); err != nil {
		return fmt.Errorf("failed to seed variant image: %w", err)
	}

	logrus.Info("Demo catalog seeded")
	return nil
}

func decimalPtr(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func intPtr(value int) *int {
	return &value
}

func stringPtr(value string) *string {
	return &value
}
