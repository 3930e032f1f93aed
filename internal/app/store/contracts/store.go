package contracts

import (
	"context"

	"github.com/light-bringer/artisan-storefront/internal/app/store/domain"
)

// ProductReader answers catalog queries. All list operations return results
// in a stable order (insertion order for the reference backend).
type ProductReader interface {
	// ListProducts returns all products.
	ListProducts(ctx context.Context) ([]*domain.Product, error)

	// GetProduct looks a product up by id. Absent products yield
	// domain.ErrProductNotFound.
	GetProduct(ctx context.Context, id string) (*domain.Product, error)

	// ListProductsByCategory filters by exact, case-sensitive category
	// match. An unknown category yields an empty slice, not an error.
	ListProductsByCategory(ctx context.Context, category string) ([]*domain.Product, error)

	// ListFeaturedProducts filters on the featured flag.
	ListFeaturedProducts(ctx context.Context) ([]*domain.Product, error)

	// SearchProducts matches the query case-insensitively as a substring of
	// name, description, or category. An empty query matches everything.
	SearchProducts(ctx context.Context, query string) ([]*domain.Product, error)
}

// ReviewRepository stores reviews and maintains the derived product
// aggregate.
type ReviewRepository interface {
	// ListReviews returns a product's reviews ordered newest first. An
	// unknown product yields an empty slice.
	ListReviews(ctx context.Context, productID string) ([]*domain.Review, error)

	// CreateReview stores the review and, in the same critical section,
	// recomputes the referenced product's rating and reviewCount. An
	// unknown product yields domain.ErrProductNotFound and nothing is
	// stored.
	CreateReview(ctx context.Context, review *domain.Review) error
}

// OrderRepository stores immutable order snapshots.
type OrderRepository interface {
	// GetOrder looks an order up by id. Absent orders yield
	// domain.ErrOrderNotFound.
	GetOrder(ctx context.Context, id string) (*domain.Order, error)

	// CreateOrder stores a new order record.
	CreateOrder(ctx context.Context, order *domain.Order) error

	// UpdateOrderStatus replaces the status field and returns the updated
	// order. Any string value is accepted. Absent orders yield
	// domain.ErrOrderNotFound.
	UpdateOrderStatus(ctx context.Context, id, status string) (*domain.Order, error)
}

// Store is the full storage capability set consumed by the application
// layer. The in-memory implementation defines the reference semantics; a
// durable backend must preserve them exactly.
type Store interface {
	ProductReader
	ReviewRepository
	OrderRepository
}
