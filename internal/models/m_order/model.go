package m_order

import "cloud.google.com/go/spanner"

// Model provides a facade for type-safe operations on the orders table.
// Line items and monetary totals are frozen at insert; only the status
// column has an update mutation.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an order.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		AllColumns,
		[]interface{}{
			data.OrderID,
			data.CustomerName,
			data.CustomerEmail,
			data.CustomerPhone,
			data.ShippingAddress,
			data.ShippingCity,
			data.ShippingState,
			data.ShippingZip,
			data.Items,
			data.SubtotalCents,
			data.ShippingCents,
			data.TaxCents,
			data.TotalCents,
			data.Status,
			data.CreatedAt,
		},
	)
}

// UpdateStatusMut creates a mutation replacing the status column.
func (m *Model) UpdateStatusMut(orderID, status string) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{OrderID, Status},
		[]interface{}{orderID, status},
	)
}
