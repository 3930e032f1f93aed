package m_order

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the orders table. Monetary totals
// are stored as integer cents, frozen at order creation.
type Data struct {
	OrderID         string             `spanner:"order_id"`
	CustomerName    string             `spanner:"customer_name"`
	CustomerEmail   string             `spanner:"customer_email"`
	CustomerPhone   spanner.NullString `spanner:"customer_phone"`
	ShippingAddress string             `spanner:"shipping_address"`
	ShippingCity    string             `spanner:"shipping_city"`
	ShippingState   string             `spanner:"shipping_state"`
	ShippingZip     string             `spanner:"shipping_zip"`
	Items           string             `spanner:"items"`
	SubtotalCents   int64              `spanner:"subtotal_cents"`
	ShippingCents   int64              `spanner:"shipping_cents"`
	TaxCents        int64              `spanner:"tax_cents"`
	TotalCents      int64              `spanner:"total_cents"`
	Status          string             `spanner:"status"`
	CreatedAt       time.Time          `spanner:"created_at"`
}
