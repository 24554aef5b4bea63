package catalog_feed

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	"github.com/murkotick/catalog-engine/internal/app/catalog/queries/get_product"
)

// SpannerFeedQuery selects feed candidates and walks the category tree.
type SpannerFeedQuery struct {
	Client *spanner.Client
}

func NewSpannerFeedQuery(client *spanner.Client) *SpannerFeedQuery {
	return &SpannerFeedQuery{Client: client}
}

// DescendantCategoryIDs loads the parent links once and walks them breadth first.
// The result starts with categoryID itself.
func (q *SpannerFeedQuery) DescendantCategoryIDs(ctx context.Context, categoryID string) ([]string, error) {
	iter := q.Client.Single().Query(ctx, spanner.Statement{
		SQL: `SELECT category_id, parent_id FROM categories WHERE parent_id IS NOT NULL`,
	})
	defer iter.Stop()

	children := make(map[string][]string)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var id, parent string
		if err := row.Columns(&id, &parent); err != nil {
			return nil, err
		}
		children[parent] = append(children[parent], id)
	}

	return walkCategories(categoryID, children), nil
}

func walkCategories(root string, children map[string][]string) []string {
	out := []string{root}
	seen := map[string]struct{}{root: {}}
	for i := 0; i < len(out); i++ {
		for _, child := range children[out[i]] {
			if _, ok := seen[child]; ok {
				continue
			}
			seen[child] = struct{}{}
			out = append(out, child)
		}
	}
	return out
}

// FeedCandidates projects {id, price, position} of active products. The join on
// product_categories can return a product more than once.
func (q *SpannerFeedQuery) FeedCandidates(ctx context.Context, categoryIDs, brandIDs []string, ordering domain.FeedOrdering) ([]domain.FeedCandidate, error) {
	sql := `SELECT p.product_id, p.price, p.position
		FROM products p
		LEFT JOIN product_categories pc ON pc.product_id = p.product_id
		WHERE p.active = TRUE`
	params := map[string]interface{}{}

	if len(categoryIDs) > 0 {
		sql += ` AND (p.main_category_id IN UNNEST(@cats) OR pc.category_id IN UNNEST(@cats))`
		params["cats"] = categoryIDs
	}
	if len(brandIDs) > 0 {
		sql += ` AND p.brand_id IN UNNEST(@brands)`
		params["brands"] = brandIDs
	}
	sql += ` ORDER BY ` + orderClause(ordering)

	iter := q.Client.Single().Query(ctx, spanner.Statement{SQL: sql, Params: params})
	defer iter.Stop()

	out := make([]domain.FeedCandidate, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		var (
			id       string
			price    spanner.NullNumeric
			position int64
		)
		if err := row.Columns(&id, &price, &position); err != nil {
			return nil, err
		}
		amount := domain.Zero()
		if r := get_product.NullableRat(price); r != nil {
			amount = domain.NewMoneyFromRat(r)
		}
		out = append(out, domain.FeedCandidate{ProductID: id, Price: amount, Position: position})
	}
}

func orderClause(ordering domain.FeedOrdering) string {
	switch ordering {
	case domain.OrderingCheapest:
		return `p.price ASC, p.product_id`
	case domain.OrderingMostExpensive:
		return `p.price DESC, p.product_id`
	default:
		return `p.position DESC, p.product_id`
	}
}
