package m_review

// Field name constants for the reviews table.
const (
	TableName = "reviews"

	ReviewID     = "review_id"
	ProductID    = "product_id"
	ReviewerName = "reviewer_name"
	Rating       = "rating"
	Comment      = "comment"
	Verified     = "verified"
	Helpful      = "helpful"
	CreatedAt    = "created_at"
)

// AllColumns lists every column in read order.
var AllColumns = []string{
	ReviewID,
	ProductID,
	ReviewerName,
	Rating,
	Comment,
	Verified,
	Helpful,
	CreatedAt,
}
