package queries

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/catalog-engine/internal/app/catalog/contracts"
	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	"github.com/murkotick/catalog-engine/internal/app/catalog/dto"
	"github.com/murkotick/catalog-engine/internal/app/catalog/queries/catalog_feed"
	"github.com/murkotick/catalog-engine/internal/app/catalog/queries/get_product"
	"github.com/murkotick/catalog-engine/internal/app/catalog/queries/list_colors"
	"github.com/murkotick/catalog-engine/internal/app/catalog/queries/list_products"
	"github.com/murkotick/catalog-engine/internal/app/catalog/queries/price_list"
	"github.com/murkotick/catalog-engine/internal/app/catalog/queries/related_products"
)

var (
	_ contracts.ReadModel         = (*SpannerReadModel)(nil)
	_ contracts.FeedReader        = (*SpannerReadModel)(nil)
	_ contracts.RelatedReader     = (*SpannerReadModel)(nil)
	_ contracts.ManualPriceReader = (*SpannerReadModel)(nil)
)

// SpannerReadModel is an infrastructure adapter that satisfies the read-side contracts.
// It composes the individual query implementations.
type SpannerReadModel struct {
	getQ     *get_product.SpannerGetProductQuery
	listQ    *list_products.SpannerListProductsQuery
	colorsQ  *list_colors.SpannerListColorsQuery
	feedQ    *catalog_feed.SpannerFeedQuery
	relatedQ *related_products.SpannerRelatedQuery
	pricesQ  *price_list.SpannerManualPriceQuery
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		getQ:     get_product.NewSpannerGetProductQuery(client),
		listQ:    list_products.NewSpannerListProductsQuery(client),
		colorsQ:  list_colors.NewSpannerListColorsQuery(client),
		feedQ:    catalog_feed.NewSpannerFeedQuery(client),
		relatedQ: related_products.NewSpannerRelatedQuery(client),
		pricesQ:  price_list.NewSpannerManualPriceQuery(client),
	}
}

func (rm *SpannerReadModel) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	return rm.getQ.GetProduct(ctx, productID)
}

func (rm *SpannerReadModel) ListProducts(ctx context.Context, productIDs []string) ([]*dto.ProductDTO, error) {
	return rm.listQ.ListProducts(ctx, productIDs)
}

func (rm *SpannerReadModel) ColorNames(ctx context.Context) ([]string, error) {
	return rm.colorsQ.ColorNames(ctx)
}

func (rm *SpannerReadModel) DescendantCategoryIDs(ctx context.Context, categoryID string) ([]string, error) {
	return rm.feedQ.DescendantCategoryIDs(ctx, categoryID)
}

func (rm *SpannerReadModel) FeedCandidates(ctx context.Context, categoryIDs, brandIDs []string, ordering domain.FeedOrdering) ([]domain.FeedCandidate, error) {
	return rm.feedQ.FeedCandidates(ctx, categoryIDs, brandIDs, ordering)
}

func (rm *SpannerReadModel) DirectRelations(ctx context.Context, productID string, limit int) ([]string, error) {
	return rm.relatedQ.DirectRelations(ctx, productID, limit)
}

func (rm *SpannerReadModel) ActiveInMainCategory(ctx context.Context, categoryID string, limit int) ([]string, error) {
	return rm.relatedQ.ActiveInMainCategory(ctx, categoryID, limit)
}

func (rm *SpannerReadModel) ActiveInCategories(ctx context.Context, categoryIDs []string, excludeID string, limit int) ([]string, error) {
	return rm.relatedQ.ActiveInCategories(ctx, categoryIDs, excludeID, limit)
}

func (rm *SpannerReadModel) TopSellers(ctx context.Context, limit int) ([]string, error) {
	return rm.relatedQ.TopSellers(ctx, limit)
}

func (rm *SpannerReadModel) RelationExists(ctx context.Context, productID, relatedID string) (bool, error) {
	return rm.relatedQ.RelationExists(ctx, productID, relatedID)
}

func (rm *SpannerReadModel) ManualPrice(ctx context.Context, productID, variantID, currency string) (*domain.Money, error) {
	return rm.pricesQ.ManualPrice(ctx, productID, variantID, currency)
}
