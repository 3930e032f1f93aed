package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/artisan-storefront/internal/app/store/domain"
	"github.com/light-bringer/artisan-storefront/internal/storage/spannerstore"
	"github.com/light-bringer/artisan-storefront/tests/testutil"
)

func TestSpannerStore_Products(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	store := spannerstore.New(client)

	id1 := testutil.CreateTestProduct(t, client, "Ceramic Vase", 0)
	id2 := testutil.CreateTestProduct(t, client, "Stoneware Mug", 1)

	t.Run("lists in position order", func(t *testing.T) {
		products, err := store.ListProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, id1, products[0].ID)
		assert.Equal(t, id2, products[1].ID)
	})

	t.Run("get by id", func(t *testing.T) {
		p, err := store.GetProduct(ctx, id1)
		require.NoError(t, err)
		assert.Equal(t, "Ceramic Vase", p.Name)
		assert.Equal(t, "45.00", p.Price.String())
	})

	t.Run("absent id is not found", func(t *testing.T) {
		_, err := store.GetProduct(ctx, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("category filter is case-sensitive", func(t *testing.T) {
		pottery, err := store.ListProductsByCategory(ctx, "Pottery")
		require.NoError(t, err)
		assert.Len(t, pottery, 2)

		lower, err := store.ListProductsByCategory(ctx, "pottery")
		require.NoError(t, err)
		assert.Empty(t, lower)
	})

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		out, err := store.SearchProducts(ctx, "CERAMIC")
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, id1, out[0].ID)
	})
}

func TestSpannerStore_Reviews(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	store := spannerstore.New(client)

	productID := testutil.CreateTestProduct(t, client, "Ceramic Vase", 0)

	t.Run("create recomputes the aggregate atomically", func(t *testing.T) {
		for _, rating := range []int{5, 5, 4} {
			review := &domain.Review{
				ID:           uuid.New().String(),
				ProductID:    productID,
				ReviewerName: "Reviewer",
				Rating:       rating,
				Comment:      "nice",
				CreatedAt:    time.Now().UTC(),
			}
			require.NoError(t, store.CreateReview(ctx, review))
		}

		p, err := store.GetProduct(ctx, productID)
		require.NoError(t, err)
		assert.Equal(t, 4.7, p.Rating)
		assert.Equal(t, 3, p.ReviewCount)
	})

	t.Run("list returns newest first", func(t *testing.T) {
		reviews, err := store.ListReviews(ctx, productID)
		require.NoError(t, err)
		require.Len(t, reviews, 3)
		for i := 1; i < len(reviews); i++ {
			assert.False(t, reviews[i].CreatedAt.After(reviews[i-1].CreatedAt))
		}
	})

	t.Run("create against absent product fails", func(t *testing.T) {
		review := &domain.Review{
			ID:           uuid.New().String(),
			ProductID:    uuid.New().String(),
			ReviewerName: "Reviewer",
			Rating:       5,
			Comment:      "nice",
			CreatedAt:    time.Now().UTC(),
		}
		err := store.CreateReview(ctx, review)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("unknown product lists empty", func(t *testing.T) {
		reviews, err := store.ListReviews(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Empty(t, reviews)
	})
}

func TestSpannerStore_Orders(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	store := spannerstore.New(client)

	t.Run("create then get round-trips", func(t *testing.T) {
		order := testutil.NewTestOrder()
		phone := "555-0100"
		order.CustomerPhone = &phone

		require.NoError(t, store.CreateOrder(ctx, order))

		fetched, err := store.GetOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.CustomerName, fetched.CustomerName)
		assert.Equal(t, "33.53", fetched.Total.String())
		require.NotNil(t, fetched.CustomerPhone)
		assert.Equal(t, "555-0100", *fetched.CustomerPhone)

		items, err := fetched.LineItems()
		require.NoError(t, err)
		require.Len(t, items, 1)
	})

	t.Run("nil phone round-trips as nil", func(t *testing.T) {
		order := testutil.NewTestOrder()
		require.NoError(t, store.CreateOrder(ctx, order))

		fetched, err := store.GetOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.Nil(t, fetched.CustomerPhone)
	})

	t.Run("status update", func(t *testing.T) {
		order := testutil.NewTestOrder()
		require.NoError(t, store.CreateOrder(ctx, order))

		updated, err := store.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusDelivered)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusDelivered, updated.Status)

		fetched, err := store.GetOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusDelivered, fetched.Status)
	})

	t.Run("absent order is not found", func(t *testing.T) {
		_, err := store.GetOrder(ctx, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)

		_, err = store.UpdateOrderStatus(ctx, uuid.New().String(), "shipped")
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}
