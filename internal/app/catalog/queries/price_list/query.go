package price_list

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	"github.com/murkotick/catalog-engine/internal/app/catalog/queries/get_product"
)

// SpannerManualPriceQuery reads pinned prices from product_prices. The
// product-level row has an empty variant_key.
type SpannerManualPriceQuery struct {
	Client *spanner.Client
}

func NewSpannerManualPriceQuery(client *spanner.Client) *SpannerManualPriceQuery {
	return &SpannerManualPriceQuery{Client: client}
}

func (q *SpannerManualPriceQuery) ManualPrice(ctx context.Context, productID, variantID, currency string) (*domain.Money, error) {
	stmt := spanner.Statement{
		SQL: `SELECT price FROM product_prices
			WHERE product_id = @product_id AND variant_key = @variant_key AND currency_code = @currency`,
		Params: map[string]interface{}{
			"product_id":  productID,
			"variant_key": variantID,
			"currency":    currency,
		},
	}
	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("%w: product %s, variant %q, currency %s", domain.ErrManualPriceNotFound, productID, variantID, currency)
	}
	if err != nil {
		return nil, err
	}

	var price spanner.NullNumeric
	if err := row.Columns(&price); err != nil {
		return nil, err
	}
	r := get_product.NullableRat(price)
	if r == nil {
		return nil, fmt.Errorf("%w: product %s, variant %q, currency %s has a null price", domain.ErrManualPriceNotFound, productID, variantID, currency)
	}
	return domain.NewMoneyFromRat(r), nil
}
