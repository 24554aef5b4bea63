package related_products

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
)

// SpannerRelatedQuery serves the recommendation tiers. Relations are directed:
// only rows where product_id is the source are followed.
type SpannerRelatedQuery struct {
	Client *spanner.Client
}

func NewSpannerRelatedQuery(client *spanner.Client) *SpannerRelatedQuery {
	return &SpannerRelatedQuery{Client: client}
}

func (q *SpannerRelatedQuery) DirectRelations(ctx context.Context, productID string, limit int) ([]string, error) {
	return q.ids(ctx, spanner.Statement{
		SQL: `SELECT r.related_product_id
			FROM related_products r
			JOIN products p ON p.product_id = r.related_product_id
			WHERE r.product_id = @id
			ORDER BY r.position DESC, p.position DESC, r.related_product_id
			LIMIT @limit`,
		Params: map[string]interface{}{"id": productID, "limit": int64(limit)},
	})
}

func (q *SpannerRelatedQuery) ActiveInMainCategory(ctx context.Context, categoryID string, limit int) ([]string, error) {
	return q.ids(ctx, spanner.Statement{
		SQL: `SELECT product_id FROM products
			WHERE active = TRUE AND main_category_id = @category
			ORDER BY position DESC, product_id
			LIMIT @limit`,
		Params: map[string]interface{}{"category": categoryID, "limit": int64(limit)},
	})
}

func (q *SpannerRelatedQuery) ActiveInCategories(ctx context.Context, categoryIDs []string, excludeID string, limit int) ([]string, error) {
	if len(categoryIDs) == 0 {
		return []string{}, nil
	}
	return q.ids(ctx, spanner.Statement{
		SQL: `SELECT p.product_id FROM products p
			WHERE p.active = TRUE
			AND p.product_id != @exclude
			AND EXISTS (
				SELECT 1 FROM product_categories pc
				WHERE pc.product_id = p.product_id AND pc.category_id IN UNNEST(@cats)
			)
			ORDER BY p.position DESC, p.product_id
			LIMIT @limit`,
		Params: map[string]interface{}{"cats": categoryIDs, "exclude": excludeID, "limit": int64(limit)},
	})
}

func (q *SpannerRelatedQuery) TopSellers(ctx context.Context, limit int) ([]string, error) {
	return q.ids(ctx, spanner.Statement{
		SQL: `SELECT product_id FROM products
			WHERE active = TRUE
			ORDER BY position DESC, product_id
			LIMIT @limit`,
		Params: map[string]interface{}{"limit": int64(limit)},
	})
}

func (q *SpannerRelatedQuery) RelationExists(ctx context.Context, productID, relatedID string) (bool, error) {
	row, err := q.Client.Single().ReadRow(ctx, "related_products",
		spanner.Key{productID, relatedID}, []string{"relation_id"})
	if spanner.ErrCode(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return row != nil, nil
}

func (q *SpannerRelatedQuery) ids(ctx context.Context, stmt spanner.Statement) ([]string, error) {
	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]string, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		var id string
		if err := row.Columns(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
}
