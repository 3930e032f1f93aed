package m_product

import "cloud.google.com/go/spanner"

// Data represents the database model for the products table. Prices are
// stored as integer cents; Position preserves catalog insertion order.
type Data struct {
	ProductID          string            `spanner:"product_id"`
	Name               string            `spanner:"name"`
	Description        string            `spanner:"description"`
	PriceCents         int64             `spanner:"price_cents"`
	OriginalPriceCents spanner.NullInt64 `spanner:"original_price_cents"`
	Image              string            `spanner:"image"`
	Category           string            `spanner:"category"`
	Rating             float64           `spanner:"rating"`
	ReviewCount        int64             `spanner:"review_count"`
	InStock            bool              `spanner:"in_stock"`
	Featured           bool              `spanner:"featured"`
	Position           int64             `spanner:"position"`
}
