package m_product

import "cloud.google.com/go/spanner"

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a product.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		AllColumns,
		[]interface{}{
			data.ProductID,
			data.Name,
			data.Description,
			data.PriceCents,
			data.OriginalPriceCents,
			data.Image,
			data.Category,
			data.Rating,
			data.ReviewCount,
			data.InStock,
			data.Featured,
			data.Position,
		},
	)
}

// UpdateAggregateMut creates a mutation updating the derived rating fields.
// These are the only product columns the storefront mutates at runtime.
func (m *Model) UpdateAggregateMut(productID string, rating float64, reviewCount int64) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{ProductID, Rating, ReviewCount},
		[]interface{}{productID, rating, reviewCount},
	)
}

// DeleteMut creates a mutation for deleting a product.
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}
