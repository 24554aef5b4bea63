package list_products

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/catalog-engine/internal/app/catalog/dto"
	"github.com/murkotick/catalog-engine/internal/app/catalog/queries/get_product"
)

// SpannerListProductsQuery hydrates product rows by id. Categories and
// variants are not loaded.
type SpannerListProductsQuery struct {
	Client *spanner.Client
}

func NewSpannerListProductsQuery(client *spanner.Client) *SpannerListProductsQuery {
	return &SpannerListProductsQuery{Client: client}
}

func (q *SpannerListProductsQuery) ListProducts(ctx context.Context, productIDs []string) ([]*dto.ProductDTO, error) {
	out := make([]*dto.ProductDTO, 0, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}

	stmt := spanner.Statement{
		SQL:    `SELECT ` + get_product.ProductColumns + ` FROM products WHERE product_id IN UNNEST(@ids)`,
		Params: map[string]interface{}{"ids": productIDs},
	}
	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		p, err := get_product.ScanProduct(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
}
