// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Catalog
	KeyCatalogCategoriesEmpty = "catalog.categories_empty"
	KeyCatalogProductsEmpty   = "catalog.products_empty"
	KeyCatalogUnavailable     = "catalog.unavailable"
	KeyProductNotFound        = "product.not_found"

	// Comparison sessions
	KeyComparisonCreated      = "comparison.created"
	KeyComparisonNotFound     = "comparison.not_found"
	KeyComparisonSlotInvalid  = "comparison.slot_invalid"
	KeyComparisonSlotNotOpen  = "comparison.slot_not_open"
	KeyComparisonSlotCleared  = "comparison.slot_cleared"
	KeyComparisonProductAdded = "comparison.product_added"

	// Validation
	KeyValidationInvalid = "validation.invalid"
)
