package domain

import "time"

// Rating bounds for reviews.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is an immutable product review. Verified and Helpful are
// server-controlled: new reviews always start unverified with zero helpful
// votes. CreatedAt is assigned by the store and never changes.
type Review struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	ReviewerName string    `json:"reviewerName"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	Verified     bool      `json:"verified"`
	Helpful      int       `json:"helpful"`
	CreatedAt    time.Time `json:"createdAt"`
}
