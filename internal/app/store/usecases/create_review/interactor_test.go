package create_review

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/artisan-storefront/internal/app/store/domain"
	"github.com/light-bringer/artisan-storefront/internal/pkg/clock"
	"github.com/light-bringer/artisan-storefront/internal/storage/memorystore"
)

func validRequest() *Request {
	return &Request{
		ProductID:    "p1",
		ReviewerName: "Jane Smith",
		Rating:       5,
		Comment:      "Beautiful craftsmanship.",
	}
}

func TestInteractor_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("stores review with server-assigned fields", func(t *testing.T) {
		store := memorystore.NewEmpty()
		store.AddProduct(&domain.Product{ID: "p1", Price: domain.FromCents(1000)})

		mockClock := clock.NewMockClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
		interactor := NewInteractor(store, mockClock)

		review, err := interactor.Execute(ctx, validRequest())
		require.NoError(t, err)

		assert.NotEmpty(t, review.ID)
		assert.Equal(t, "p1", review.ProductID)
		assert.Equal(t, 5, review.Rating)
		assert.False(t, review.Verified)
		assert.Equal(t, 0, review.Helpful)
		assert.Equal(t, mockClock.Now(), review.CreatedAt)

		stored, err := store.ListReviews(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, review.ID, stored[0].ID)
	})

	t.Run("updates the product aggregate", func(t *testing.T) {
		store := memorystore.NewEmpty()
		store.AddProduct(&domain.Product{ID: "p1", Price: domain.FromCents(1000)})
		interactor := NewInteractor(store, clock.NewRealClock())

		req := validRequest()
		req.Rating = 4
		_, err := interactor.Execute(ctx, req)
		require.NoError(t, err)

		p, err := store.GetProduct(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, 4.0, p.Rating)
		assert.Equal(t, 1, p.ReviewCount)
	})

	t.Run("rejects out-of-range rating", func(t *testing.T) {
		store := memorystore.NewEmpty()
		store.AddProduct(&domain.Product{ID: "p1", Price: domain.FromCents(1000)})
		interactor := NewInteractor(store, clock.NewRealClock())

		for _, rating := range []int{0, 6, -1} {
			req := validRequest()
			req.Rating = rating

			_, err := interactor.Execute(ctx, req)
			verr, ok := domain.AsValidationError(err)
			require.True(t, ok, "rating %d should fail validation", rating)
			assert.Contains(t, verr.Fields, "rating")
		}

		// nothing reached the store
		p, err := store.GetProduct(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, 0, p.ReviewCount)
	})

	t.Run("rejects short reviewer name", func(t *testing.T) {
		interactor := NewInteractor(memorystore.NewEmpty(), clock.NewRealClock())

		req := validRequest()
		req.ReviewerName = "J"

		_, err := interactor.Execute(ctx, req)
		verr, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, verr.Fields, "reviewerName")
	})

	t.Run("rejects empty comment", func(t *testing.T) {
		interactor := NewInteractor(memorystore.NewEmpty(), clock.NewRealClock())

		req := validRequest()
		req.Comment = ""

		_, err := interactor.Execute(ctx, req)
		verr, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, verr.Fields, "comment")
	})

	t.Run("absent product surfaces not found", func(t *testing.T) {
		interactor := NewInteractor(memorystore.NewEmpty(), clock.NewRealClock())

		_, err := interactor.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}
