package m_related_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds the insert for one directed relation.
func InsertMutation(relationID, productID, relatedProductID string, position int64, createdAt time.Time) *spanner.Mutation {
	return spanner.Insert(TableName,
		[]string{ColProductID, ColRelatedProductID, ColRelationID, ColPosition, ColCreatedAt},
		[]interface{}{productID, relatedProductID, relationID, position, createdAt},
	)
}
