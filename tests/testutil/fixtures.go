package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/artisan-storefront/internal/app/store/domain"
	"github.com/light-bringer/artisan-storefront/internal/storage/spannerstore"
)

// CreateTestProduct inserts a catalog product directly and returns its id.
func CreateTestProduct(t *testing.T, client *spanner.Client, name string, position int64) string {
	t.Helper()

	p := &domain.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Description: "Test product description",
		Price:       domain.FromCents(4500),
		Image:       "/assets/products/test.jpg",
		Category:    "Pottery",
		InStock:     true,
	}

	store := spannerstore.New(client)
	_, err := client.Apply(context.Background(), []*spanner.Mutation{
		store.InsertProductMut(p, position),
	})
	require.NoError(t, err, "failed to create test product")

	return p.ID
}

// CreateTestReview inserts a review row directly, bypassing the aggregate
// recompute.
func CreateTestReview(t *testing.T, client *spanner.Client, productID string, rating int, at time.Time) string {
	t.Helper()

	r := &domain.Review{
		ID:           uuid.New().String(),
		ProductID:    productID,
		ReviewerName: "Test Reviewer",
		Rating:       rating,
		Comment:      "test comment",
		CreatedAt:    at,
	}

	store := spannerstore.New(client)
	_, err := client.Apply(context.Background(), []*spanner.Mutation{
		store.InsertReviewMut(r),
	})
	require.NoError(t, err, "failed to create test review")

	return r.ID
}

// NewTestOrder builds a valid order snapshot for storage tests.
func NewTestOrder() *domain.Order {
	return &domain.Order{
		ID:            uuid.New().String(),
		CustomerName:  "Jane Smith",
		CustomerEmail: "jane@example.com",
		Items:         `[{"productId":"p1","name":"Vase","price":25.50,"quantity":1}]`,
		Subtotal:      domain.FromCents(2550),
		Shipping:      domain.FromCents(599),
		Tax:           domain.FromCents(204),
		Total:         domain.FromCents(3353),
		Status:        domain.OrderStatusPending,
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}
