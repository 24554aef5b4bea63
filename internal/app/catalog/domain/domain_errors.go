package domain

import "errors"

// Validation errors. Always surfaced to the caller, never retried.
var (
	// ErrNegativePrice indicates an attempt to use a negative price.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrEmptySlug indicates a product without a slug.
	ErrEmptySlug = errors.New("product slug cannot be empty")

	// ErrEmptyProductName indicates a product without a name.
	ErrEmptyProductName = errors.New("product name cannot be empty")

	// ErrInvalidSalePercentage indicates a sale percentage outside (0, 100].
	ErrInvalidSalePercentage = errors.New("sale percentage must be between 0 and 100")

	// ErrInvalidRelationHash indicates a relation hash token without "=".
	ErrInvalidRelationHash = errors.New("invalid relation hash")

	// ErrInvalidParameter indicates a variant parameter name or value that cannot be hashed.
	ErrInvalidParameter = errors.New("invalid variant parameter")

	// ErrInvalidEAN indicates a value that is not a valid EAN-13 code.
	ErrInvalidEAN = errors.New("invalid EAN-13 code")

	// ErrInvalidColor indicates a color that is neither a hex code nor a known color name.
	ErrInvalidColor = errors.New("invalid color")

	// ErrSelfRelation indicates an attempt to relate a product to itself.
	ErrSelfRelation = errors.New("product cannot be related to itself")

	// ErrRelationAlreadyExists indicates a duplicate (product, related product) pair.
	ErrRelationAlreadyExists = errors.New("product relation already exists")

	// ErrTooManyCombinations indicates a parameter map whose Cartesian product exceeds the cap.
	ErrTooManyCombinations = errors.New("too many variant combinations")

	// ErrInvalidFeedFilter indicates a feed filter that failed validation.
	ErrInvalidFeedFilter = errors.New("invalid feed filter")
)

// Not-found errors. Callers decide whether they are fatal.
var (
	// ErrProductNotFound indicates that a product with the given ID does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrVariantNotFound indicates a variant that does not exist or belongs to another product.
	ErrVariantNotFound = errors.New("variant not found")

	// ErrManualPriceNotFound indicates no pinned price row; price resolution falls back to conversion.
	ErrManualPriceNotFound = errors.New("manual price not found")
)

// Configuration errors. Fatal, not retried.
var (
	// ErrExchangeRateUnavailable indicates a conversion was required but no rate source could serve it.
	ErrExchangeRateUnavailable = errors.New("exchange rate conversion unavailable")

	// ErrUnknownCurrency indicates a currency code that is not configured.
	ErrUnknownCurrency = errors.New("unknown currency")
)
