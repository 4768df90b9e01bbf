// internal/catalog/errors.go
package catalog

import (
	"errors"
	"fmt"

	"github.com/javajoker/variant-catalog/internal/i18n"
)

// Kind identifies why a mutation was rejected.
type Kind string

const (
	KindNotFound                       Kind = "NOT_FOUND"
	KindDuplicateBarcode               Kind = "DUPLICATE_BARCODE"
	KindDuplicateVariantCombination    Kind = "DUPLICATE_VARIANT_COMBINATION"
	KindNotVariantCapable              Kind = "NOT_VARIANT_CAPABLE"
	KindMissingColorImage              Kind = "MISSING_COLOR_IMAGE"
	KindColorRequiredForVariantProduct Kind = "COLOR_REQUIRED_FOR_VARIANT_PRODUCT"
	KindMissingUploadFile              Kind = "MISSING_UPLOAD_FILE"
	KindValidationInput                Kind = "VALIDATION_ERROR"
)

// MessageKey is the i18n key holding the localized message for the kind.
func (k Kind) MessageKey() string {
	switch k {
	case KindNotFound:
		return i18n.KeyCatalogNotFound
	case KindDuplicateBarcode:
		return i18n.KeyCatalogDuplicateBarcode
	case KindDuplicateVariantCombination:
		return i18n.KeyCatalogDuplicateVariantCombination
	case KindNotVariantCapable:
		return i18n.KeyCatalogNotVariantCapable
	case KindMissingColorImage:
		return i18n.KeyCatalogMissingColorImage
	case KindColorRequiredForVariantProduct:
		return i18n.KeyCatalogColorRequired
	case KindMissingUploadFile:
		return i18n.KeyCatalogMissingUploadFile
	default:
		return i18n.KeyCatalogValidationInput
	}
}

// Violation is a rejected mutation. It is a client error, never fatal.
type Violation struct {
	Kind     Kind
	Message  string
	Resource string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Kind, v.Message)
}

// Is matches another *Violation of the same kind, so errors.Is(err, ErrDuplicateBarcode) works.
func (v *Violation) Is(target error) bool {
	t, ok := target.(*Violation)
	if !ok {
		return false
	}
	return t.Kind == v.Kind
}

// Sentinels for errors.Is comparisons.
var (
	ErrNotFound                       = &Violation{Kind: KindNotFound}
	ErrDuplicateBarcode               = &Violation{Kind: KindDuplicateBarcode}
	ErrDuplicateVariantCombination    = &Violation{Kind: KindDuplicateVariantCombination}
	ErrNotVariantCapable              = &Violation{Kind: KindNotVariantCapable}
	ErrMissingColorImage              = &Violation{Kind: KindMissingColorImage}
	ErrColorRequiredForVariantProduct = &Violation{Kind: KindColorRequiredForVariantProduct}
	ErrMissingUploadFile              = &Violation{Kind: KindMissingUploadFile}
	ErrValidationInput                = &Violation{Kind: KindValidationInput}
)

func NotFound(resource string) *Violation {
	return &Violation{Kind: KindNotFound, Message: resource + " not found", Resource: resource}
}

func DuplicateBarcode(barcode string) *Violation {
	return &Violation{Kind: KindDuplicateBarcode, Message: fmt.Sprintf("barcode %q is already in use", barcode)}
}

func DuplicateVariantCombination() *Violation {
	return &Violation{
		Kind:    KindDuplicateVariantCombination,
		Message: "a variant with the same color and size already exists for this product",
	}
}

func NotVariantCapable() *Violation {
	return &Violation{Kind: KindNotVariantCapable, Message: "variants cannot be added to a standard product"}
}

func MissingColorImage() *Violation {
	return &Violation{Kind: KindMissingColorImage, Message: "at least one image must exist for the variant's color"}
}

func ColorRequiredForVariantProduct() *Violation {
	return &Violation{Kind: KindColorRequiredForVariantProduct, Message: "color_id is required for images of variant products"}
}

func MissingUploadFile() *Violation {
	return &Violation{Kind: KindMissingUploadFile, Message: "an image file is required"}
}

func ValidationInput(format string, args ...interface{}) *Violation {
	return &Violation{Kind: KindValidationInput, Message: fmt.Sprintf(format, args...)}
}

// AsViolation extracts a *Violation from an error chain.
func AsViolation(err error) (*Violation, bool) {
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
