package get_order

import (
	"context"

	"github.com/light-bringer/artisan-storefront/internal/app/store/contracts"
	"github.com/light-bringer/artisan-storefront/internal/app/store/domain"
)

// Request identifies the order to fetch.
type Request struct {
	OrderID string
}

// Query retrieves a single order for the confirmation view.
type Query struct {
	store contracts.OrderRepository
}

// NewQuery creates a new get order query.
func NewQuery(store contracts.OrderRepository) *Query {
	return &Query{store: store}
}

// Execute looks the order up. Absent orders yield domain.ErrOrderNotFound.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.Order, error) {
	return q.store.GetOrder(ctx, req.OrderID)
}
