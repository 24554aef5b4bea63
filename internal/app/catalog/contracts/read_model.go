package contracts

import (
	"context"

	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	"github.com/murkotick/catalog-engine/internal/app/catalog/dto"
)

// ReadModel loads products for queries and usecases.
type ReadModel interface {
	// GetProduct returns the product with its categories and variants, or domain.ErrProductNotFound.
	GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error)

	// ListProducts hydrates the given ids. Missing ids are skipped; order is not guaranteed.
	ListProducts(ctx context.Context, productIDs []string) ([]*dto.ProductDTO, error)

	// ColorNames returns every known color name.
	ColorNames(ctx context.Context) ([]string, error)
}

// FeedReader selects feed candidates.
type FeedReader interface {
	// DescendantCategoryIDs returns categoryID and all categories below it.
	DescendantCategoryIDs(ctx context.Context, categoryID string) ([]string, error)

	// FeedCandidates returns active products in any of categoryIDs (main or secondary)
	// and any of brandIDs. Empty slices do not filter. Rows may repeat.
	FeedCandidates(ctx context.Context, categoryIDs, brandIDs []string, ordering domain.FeedOrdering) ([]domain.FeedCandidate, error)
}

// RelatedReader serves the recommendation tiers. Every method returns product ids.
type RelatedReader interface {
	// DirectRelations orders by relation position desc, then related product position desc.
	DirectRelations(ctx context.Context, productID string, limit int) ([]string, error)

	// ActiveInMainCategory returns active products whose main category is categoryID, by position desc.
	ActiveInMainCategory(ctx context.Context, categoryID string, limit int) ([]string, error)

	// ActiveInCategories returns active products attached to any of categoryIDs, other than
	// the product excludeID, by position desc.
	ActiveInCategories(ctx context.Context, categoryIDs []string, excludeID string, limit int) ([]string, error)

	// TopSellers returns active products by position desc.
	TopSellers(ctx context.Context, limit int) ([]string, error)

	// RelationExists reports whether productID already relates to relatedID.
	RelationExists(ctx context.Context, productID, relatedID string) (bool, error)
}

// ManualPriceReader looks up pinned per-currency prices.
type ManualPriceReader interface {
	// ManualPrice returns domain.ErrManualPriceNotFound when no row is pinned.
	// An empty variantID addresses the product-level price.
	ManualPrice(ctx context.Context, productID, variantID, currency string) (*domain.Money, error)
}

// Currencies exposes the configured store currencies and conversion between them.
type Currencies interface {
	MainCurrency(ctx context.Context) (string, error)
	CurrencyCodes(ctx context.Context) ([]string, error)
	Convert(ctx context.Context, amount *domain.Money, from, to string) (*domain.Money, error)
}
