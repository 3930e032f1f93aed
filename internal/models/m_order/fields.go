package m_order

// Field name constants for the orders table.
const (
	TableName = "orders"

	OrderID         = "order_id"
	CustomerName    = "customer_name"
	CustomerEmail   = "customer_email"
	CustomerPhone   = "customer_phone"
	ShippingAddress = "shipping_address"
	ShippingCity    = "shipping_city"
	ShippingState   = "shipping_state"
	ShippingZip     = "shipping_zip"
	Items           = "items"
	SubtotalCents   = "subtotal_cents"
	ShippingCents   = "shipping_cents"
	TaxCents        = "tax_cents"
	TotalCents      = "total_cents"
	Status          = "status"
	CreatedAt       = "created_at"
)

// AllColumns lists every column in read order.
var AllColumns = []string{
	OrderID,
	CustomerName,
	CustomerEmail,
	CustomerPhone,
	ShippingAddress,
	ShippingCity,
	ShippingState,
	ShippingZip,
	Items,
	SubtotalCents,
	ShippingCents,
	TaxCents,
	TotalCents,
	Status,
	CreatedAt,
}
