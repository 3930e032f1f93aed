package list_reviews

import (
	"context"

	"github.com/light-bringer/artisan-storefront/internal/app/store/contracts"
	"github.com/light-bringer/artisan-storefront/internal/app/store/domain"
)

// Request identifies the product whose reviews to list.
type Request struct {
	ProductID string
}

// Query lists a product's reviews.
type Query struct {
	store contracts.ReviewRepository
}

// NewQuery creates a new list reviews query.
func NewQuery(store contracts.ReviewRepository) *Query {
	return &Query{store: store}
}

// Execute returns the product's reviews newest first. An unknown product
// yields an empty slice, not an error.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*domain.Review, error) {
	return q.store.ListReviews(ctx, req.ProductID)
}
