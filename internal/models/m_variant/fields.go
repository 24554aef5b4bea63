package m_variant

// Field constants for the variants table (interleaved in products).
const (
	TableName = "variants"

	ColProductID         = "product_id"
	ColVariantID         = "variant_id"
	ColRelationHash      = "relation_hash"
	ColPrice             = "price"
	ColPriceAddition     = "price_addition"
	ColSoldOut           = "sold_out"
	ColWarehouseQuantity = "warehouse_quantity"
	ColCreatedAt         = "created_at"
	ColUpdatedAt         = "updated_at"
)
