package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColProductID      = "product_id"
	ColSlug           = "slug"
	ColName           = "name"
	ColPrice          = "price"
	ColSalePercentage = "sale_percentage"
	ColPosition       = "position"
	ColActive         = "active"
	ColSoldOut        = "sold_out"
	ColBrandID        = "brand_id"
	ColMainCategoryID = "main_category_id"
	ColCreatedAt      = "created_at"
	ColUpdatedAt      = "updated_at"
)

// Field constants for the product_categories table (secondary categories).
const (
	CategoriesTableName = "product_categories"

	ColCategoryID = "category_id"
)
