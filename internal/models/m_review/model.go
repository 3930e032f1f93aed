package m_review

import "cloud.google.com/go/spanner"

// Model provides a facade for type-safe operations on the reviews table.
// Reviews are immutable once written, so the facade has no update mutation.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a review.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		AllColumns,
		[]interface{}{
			data.ReviewID,
			data.ProductID,
			data.ReviewerName,
			data.Rating,
			data.Comment,
			data.Verified,
			data.Helpful,
			data.CreatedAt,
		},
	)
}

// DeleteMut creates a mutation for deleting a review.
func (m *Model) DeleteMut(reviewID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{reviewID})
}
