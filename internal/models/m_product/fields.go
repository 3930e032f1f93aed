package m_product

// Field name constants for the products table.
const (
	TableName = "products"

	ProductID          = "product_id"
	Name               = "name"
	Description        = "description"
	PriceCents         = "price_cents"
	OriginalPriceCents = "original_price_cents"
	Image              = "image"
	Category           = "category"
	Rating             = "rating"
	ReviewCount        = "review_count"
	InStock            = "in_stock"
	Featured           = "featured"
	Position           = "position"
)

// AllColumns lists every column in read order.
var AllColumns = []string{
	ProductID,
	Name,
	Description,
	PriceCents,
	OriginalPriceCents,
	Image,
	Category,
	Rating,
	ReviewCount,
	InStock,
	Featured,
	Position,
}
