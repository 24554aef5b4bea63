package m_related_product

// Field constants for the related_products table. The primary key
// (product_id, related_product_id) makes each directed pair unique.
const (
	TableName = "related_products"

	ColProductID        = "product_id"
	ColRelatedProductID = "related_product_id"
	ColRelationID       = "relation_id"
	ColPosition         = "position"
	ColCreatedAt        = "created_at"
)
