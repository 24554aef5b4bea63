package get_product

import (
	"context"
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/catalog-engine/internal/app/catalog/domain"
	"github.com/murkotick/catalog-engine/internal/app/catalog/dto"
)

// ProductColumns is the column list ScanProduct expects, in order.
const ProductColumns = `product_id, slug, name, price, sale_percentage, position,
	active, sold_out, brand_id, main_category_id, created_at, updated_at`

// SpannerGetProductQuery loads one product with its categories and variants
// from a single read-only snapshot.
type SpannerGetProductQuery struct {
	Client *spanner.Client
}

func NewSpannerGetProductQuery(client *spanner.Client) *SpannerGetProductQuery {
	return &SpannerGetProductQuery{Client: client}
}

func (q *SpannerGetProductQuery) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	txn := q.Client.ReadOnlyTransaction()
	defer txn.Close()

	iter := txn.Query(ctx, spanner.Statement{
		SQL:    `SELECT ` + ProductColumns + ` FROM products WHERE product_id = @id`,
		Params: map[string]interface{}{"id": productID},
	})
	row, err := iter.Next()
	iter.Stop()
	if err == iterator.Done {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	out, err := ScanProduct(row)
	if err != nil {
		return nil, err
	}

	if out.CategoryIDs, err = q.categories(ctx, txn, productID); err != nil {
		return nil, err
	}
	if out.Variants, err = q.variants(ctx, txn, productID); err != nil {
		return nil, err
	}
	return out, nil
}

func (q *SpannerGetProductQuery) categories(ctx context.Context, txn *spanner.ReadOnlyTransaction, productID string) ([]string, error) {
	iter := txn.Query(ctx, spanner.Statement{
		SQL:    `SELECT category_id FROM product_categories WHERE product_id = @id ORDER BY category_id`,
		Params: map[string]interface{}{"id": productID},
	})
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

// variants come back in creation order, which is the order pickers present them in.
func (q *SpannerGetProductQuery) variants(ctx context.Context, txn *spanner.ReadOnlyTransaction, productID string) ([]*dto.VariantDTO, error) {
	iter := txn.Query(ctx, spanner.Statement{
		SQL: `SELECT variant_id, relation_hash, price, price_addition, sold_out,
		             warehouse_quantity, created_at, updated_at
		      FROM variants
		      WHERE product_id = @id
		      ORDER BY created_at, variant_id`,
		Params: map[string]interface{}{"id": productID},
	})
	defer iter.Stop()

	out := make([]*dto.VariantDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		var (
			v                    dto.VariantDTO
			price, addition      spanner.NullNumeric
			createdAt, updatedAt time.Time
		)
		if err := row.Columns(&v.VariantID, &v.RelationHash, &price, &addition, &v.SoldOut,
			&v.WarehouseQuantity, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		v.Price = NullableRat(price)
		v.PriceAddition = NullableRat(addition)
		v.CreatedAt = createdAt.UTC()
		v.UpdatedAt = updatedAt.UTC()
		out = append(out, &v)
	}
}

// ScanProduct reads a row selected with ProductColumns.
func ScanProduct(row *spanner.Row) (*dto.ProductDTO, error) {
	var (
		out                  dto.ProductDTO
		price, sale          spanner.NullNumeric
		brandID, mainCatID   spanner.NullString
		createdAt, updatedAt time.Time
	)
	if err := row.Columns(&out.ProductID, &out.Slug, &out.Name, &price, &sale, &out.Position,
		&out.Active, &out.SoldOut, &brandID, &mainCatID, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	out.Price = NullableRat(price)
	if out.Price == nil {
		out.Price = new(big.Rat)
	}
	out.SalePercentage = NullableRat(sale)
	out.BrandID = brandID.StringVal
	out.MainCategoryID = mainCatID.StringVal
	out.CreatedAt = createdAt.UTC()
	out.UpdatedAt = updatedAt.UTC()
	return &out, nil
}

// NullableRat copies a NUMERIC value, nil for NULL.
func NullableRat(n spanner.NullNumeric) *big.Rat {
	if !n.Valid {
		return nil
	}
	return new(big.Rat).Set(&n.Numeric)
}
