package m_variant

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap prepares a variant row. Nil prices are stored as NULL.
func BuildInsertMap(productID, variantID, relationHash string, price, addition *big.Rat,
	soldOut bool, warehouseQuantity int64, createdAt, updatedAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColProductID:         productID,
		ColVariantID:         variantID,
		ColRelationHash:      relationHash,
		ColPrice:             Numeric(price),
		ColPriceAddition:     Numeric(addition),
		ColSoldOut:           soldOut,
		ColWarehouseQuantity: warehouseQuantity,
		ColCreatedAt:         createdAt,
		ColUpdatedAt:         updatedAt,
	}
}

// InsertMutation builds a spanner.Insert from a value map.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// UpdateMutation builds a spanner.Update keyed by (product_id, variant_id).
func UpdateMutation(productID, variantID string, values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColProductID, ColVariantID}
	vals := []interface{}{productID, variantID}
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Update(TableName, cols, vals)
}

// Numeric converts an optional amount into a NUMERIC column value.
func Numeric(r *big.Rat) spanner.NullNumeric {
	if r == nil {
		return spanner.NullNumeric{}
	}
	return spanner.NullNumeric{Numeric: *r, Valid: true}
}
