package get_product

import (
	"context"

	"github.com/light-bringer/artisan-storefront/internal/app/store/contracts"
	"github.com/light-bringer/artisan-storefront/internal/app/store/domain"
)

// Request identifies the product to fetch.
type Request struct {
	ProductID string
}

// Query retrieves a single product.
type Query struct {
	store contracts.ProductReader
}

// NewQuery creates a new get product query.
func NewQuery(store contracts.ProductReader) *Query {
	return &Query{store: store}
}

// Execute looks the product up. Absent products yield
// domain.ErrProductNotFound.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.Product, error) {
	return q.store.GetProduct(ctx, req.ProductID)
}
