// Package memorystore implements the reference storage backend: a
// non-persistent keyed collection guarded by a single mutex. Its observable
// behavior defines the semantics any durable backend must preserve.
package memorystore

import (
	"context"
	"sort"
	"sync"

	"github.com/light-bringer/artisan-storefront/internal/app/store/contracts"
	"github.com/light-bringer/artisan-storefront/internal/app/store/domain"
)

// Store is an in-memory Store implementation seeded with the fixed catalog.
// A single RWMutex serializes mutations; in particular the review
// insert + aggregate recompute runs under one write lock so concurrent
// submissions for the same product cannot lose updates.
type Store struct {
	mu sync.RWMutex

	products     map[string]*domain.Product
	productOrder []string

	reviews     map[string]*domain.Review
	reviewOrder []string

	orders map[string]*domain.Order
}

var _ contracts.Store = (*Store)(nil)

// New creates a Store seeded with the startup catalog and its historical
// reviews.
func New() *Store {
	s := &Store{
		products: make(map[string]*domain.Product),
		reviews:  make(map[string]*domain.Review),
		orders:   make(map[string]*domain.Order),
	}

	for _, p := range SeedProducts() {
		s.products[p.ID] = p
		s.productOrder = append(s.productOrder, p.ID)
	}
	for _, r := range SeedReviews() {
		s.reviews[r.ID] = r
		s.reviewOrder = append(s.reviewOrder, r.ID)
	}

	return s
}

// NewEmpty creates a Store with no seed data. Tests use it when seeded
// records would get in the way.
func NewEmpty() *Store {
	return &Store{
		products: make(map[string]*domain.Product),
		reviews:  make(map[string]*domain.Review),
		orders:   make(map[string]*domain.Order),
	}
}

// AddProduct inserts a product directly, preserving insertion order. Used by
// tests and seeding tools; the storefront itself never creates products at
// runtime.
func (s *Store) AddProduct(p *domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[p.ID]; !ok {
		s.productOrder = append(s.productOrder, p.ID)
	}
	s.products[p.ID] = p.Copy()
}

// ListProducts returns all products in insertion order.
func (s *Store) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(*domain.Product) bool { return true }), nil
}

// GetProduct looks a product up by id.
func (s *Store) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p.Copy(), nil
}

// ListProductsByCategory filters by exact, case-sensitive category match.
func (s *Store) ListProductsByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(p *domain.Product) bool { return p.Category == category }), nil
}

// ListFeaturedProducts filters on the featured flag.
func (s *Store) ListFeaturedProducts(ctx context.Context) ([]*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(p *domain.Product) bool { return p.Featured }), nil
}

// SearchProducts matches the query case-insensitively against name,
// description, or category.
func (s *Store) SearchProducts(ctx context.Context, query string) ([]*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(p *domain.Product) bool { return p.MatchesQuery(query) }), nil
}

// ListReviews returns a product's reviews ordered newest first.
func (s *Store) ListReviews(ctx context.Context, productID string) ([]*domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := make([]*domain.Review, 0)
	for _, id := range s.reviewOrder {
		if r := s.reviews[id]; r.ProductID == productID {
			cp := *r
			reviews = append(reviews, &cp)
		}
	}
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

// CreateReview stores the review and recomputes the referenced product's
// rating and reviewCount under the same write lock.
func (s *Store) CreateReview(ctx context.Context, review *domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[review.ProductID]
	if !ok {
		return domain.ErrProductNotFound
	}

	cp := *review
	s.reviews[cp.ID] = &cp
	s.reviewOrder = append(s.reviewOrder, cp.ID)

	ratings := make([]int, 0)
	for _, id := range s.reviewOrder {
		if r := s.reviews[id]; r.ProductID == review.ProductID {
			ratings = append(ratings, r.Rating)
		}
	}
	product.Rating, product.ReviewCount = domain.AggregateRating(ratings)

	return nil
}

// GetOrder looks an order up by id.
func (s *Store) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return o.Copy(), nil
}

// CreateOrder stores a new order snapshot.
func (s *Store) CreateOrder(ctx context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders[order.ID] = order.Copy()
	return nil
}

// UpdateOrderStatus replaces the status field. No transition legality is
// enforced.
func (s *Store) UpdateOrderStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	o.Status = status
	return o.Copy(), nil
}

// collect walks products in insertion order, copying the ones the predicate
// accepts.
func (s *Store) collect(keep func(*domain.Product) bool) []*domain.Product {
	out := make([]*domain.Product, 0)
	for _, id := range s.productOrder {
		if p := s.products[id]; keep(p) {
			out = append(out, p.Copy())
		}
	}
	return out
}
