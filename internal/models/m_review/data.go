package m_review

import "time"

// Data represents the database model for the reviews table.
type Data struct {
	ReviewID     string    `spanner:"review_id"`
	ProductID    string    `spanner:"product_id"`
	ReviewerName string    `spanner:"reviewer_name"`
	Rating       int64     `spanner:"rating"`
	Comment      string    `spanner:"comment"`
	Verified     bool      `spanner:"verified"`
	Helpful      int64     `spanner:"helpful"`
	CreatedAt    time.Time `spanner:"created_at"`
}
