// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeyWelcome       = "app.welcome"
	KeyInternalError = "error.internal"
	KeyRateLimited   = "error.rate_limited"

	// Catalog violations
	KeyCatalogNotFound                    = "catalog.not_found"
	KeyCatalogDuplicateBarcode            = "catalog.duplicate_barcode"
	KeyCatalogDuplicateVariantCombination = "catalog.duplicate_variant_combination"
	KeyCatalogNotVariantCapable           = "catalog.not_variant_capable"
	KeyCatalogMissingColorImage           = "catalog.missing_color_image"
	KeyCatalogColorRequired               = "catalog.color_required"
	KeyCatalogMissingUploadFile           = "catalog.missing_upload_file"
	KeyCatalogValidationInput             = "catalog.validation_input"

	// Resource names used in not-found messages
	KeyResourceProduct = "resource.product"
	KeyResourceVariant = "resource.variant"
	KeyResourceColor   = "resource.color"
	KeyResourceImage   = "resource.image"
)
