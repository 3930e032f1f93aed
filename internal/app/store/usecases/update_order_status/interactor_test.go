package update_order_status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/artisan-storefront/internal/app/store/domain"
	"github.com/light-bringer/artisan-storefront/internal/storage/memorystore"
)

func seedOrder(t *testing.T, store *memorystore.Store) *domain.Order {
	t.Helper()

	order := &domain.Order{
		ID:            "o1",
		CustomerName:  "Jane Smith",
		CustomerEmail: "jane@example.com",
		Items:         "[]",
		Subtotal:      domain.FromCents(2550),
		Shipping:      domain.FromCents(599),
		Tax:           domain.FromCents(204),
		Total:         domain.FromCents(3353),
		Status:        domain.OrderStatusPending,
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, store.CreateOrder(context.Background(), order))
	return order
}

func TestInteractor_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("updates the status", func(t *testing.T) {
		store := memorystore.NewEmpty()
		seedOrder(t, store)
		interactor := NewInteractor(store)

		updated, err := interactor.Execute(ctx, &Request{OrderID: "o1", Status: domain.OrderStatusShipped})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusShipped, updated.Status)
	})

	t.Run("any non-empty status is accepted", func(t *testing.T) {
		store := memorystore.NewEmpty()
		seedOrder(t, store)
		interactor := NewInteractor(store)

		updated, err := interactor.Execute(ctx, &Request{OrderID: "o1", Status: "on-hold"})
		require.NoError(t, err)
		assert.Equal(t, "on-hold", updated.Status)
	})

	t.Run("empty status fails validation", func(t *testing.T) {
		store := memorystore.NewEmpty()
		seedOrder(t, store)
		interactor := NewInteractor(store)

		_, err := interactor.Execute(ctx, &Request{OrderID: "o1", Status: ""})
		verr, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, verr.Fields, "status")
	})

	t.Run("absent order surfaces not found", func(t *testing.T) {
		interactor := NewInteractor(memorystore.NewEmpty())

		_, err := interactor.Execute(ctx, &Request{OrderID: "ghost", Status: domain.OrderStatusShipped})
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}
