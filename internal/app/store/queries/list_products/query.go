package list_products

import (
	"context"

	"github.com/light-bringer/artisan-storefront/internal/app/store/contracts"
	"github.com/light-bringer/artisan-storefront/internal/app/store/domain"
)

// Request selects which catalog view to list. At most one filter applies:
// Search takes precedence, then Category, then Featured; with no filter set
// the full catalog is returned. Search is a pointer so an explicit empty
// query (which matches everything) stays distinguishable from no search.
type Request struct {
	Search   *string
	Category string
	Featured bool
}

// Query lists catalog products.
type Query struct {
	store contracts.ProductReader
}

// NewQuery creates a new list products query.
func NewQuery(store contracts.ProductReader) *Query {
	return &Query{store: store}
}

// Execute returns the selected catalog view in the store's stable order.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*domain.Product, error) {
	switch {
	case req.Search != nil:
		return q.store.SearchProducts(ctx, *req.Search)
	case req.Category != "":
		return q.store.ListProductsByCategory(ctx, req.Category)
	case req.Featured:
		return q.store.ListFeaturedProducts(ctx)
	default:
		return q.store.ListProducts(ctx)
	}
}
