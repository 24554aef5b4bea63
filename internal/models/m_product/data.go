package m_product

import (
	"math/big"

	"cloud.google.com/go/spanner"
)

// UpdateMutation builds a spanner.Update for one product. values must not
// contain product_id; it is always written first as the key.
func UpdateMutation(productID string, values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColProductID}
	vals := []interface{}{productID}
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
