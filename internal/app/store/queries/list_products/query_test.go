package list_products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/artisan-storefront/internal/app/store/domain"
	"github.com/light-bringer/artisan-storefront/internal/storage/memorystore"
)

func newStore() *memorystore.Store {
	store := memorystore.NewEmpty()
	store.AddProduct(&domain.Product{ID: "p1", Name: "Ceramic Vase", Category: "Pottery", Featured: true, Price: domain.FromCents(4500)})
	store.AddProduct(&domain.Product{ID: "p2", Name: "Oak Board", Category: "Kitchen", Price: domain.FromCents(3200)})
	store.AddProduct(&domain.Product{ID: "p3", Name: "Soy Candle", Category: "Candles", Featured: true, Price: domain.FromCents(1800)})
	return store
}

func TestQuery_Execute(t *testing.T) {
	ctx := context.Background()
	query := NewQuery(newStore())

	t.Run("no filter lists everything", func(t *testing.T) {
		out, err := query.Execute(ctx, &Request{})
		require.NoError(t, err)
		assert.Len(t, out, 3)
	})

	t.Run("featured filter", func(t *testing.T) {
		out, err := query.Execute(ctx, &Request{Featured: true})
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "p1", out[0].ID)
		assert.Equal(t, "p3", out[1].ID)
	})

	t.Run("category filter", func(t *testing.T) {
		out, err := query.Execute(ctx, &Request{Category: "Kitchen"})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "p2", out[0].ID)
	})

	t.Run("search takes precedence over other filters", func(t *testing.T) {
		search := "vase"
		out, err := query.Execute(ctx, &Request{Search: &search, Category: "Kitchen", Featured: true})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "p1", out[0].ID)
	})

	t.Run("explicit empty search matches everything", func(t *testing.T) {
		search := ""
		out, err := query.Execute(ctx, &Request{Search: &search})
		require.NoError(t, err)
		assert.Len(t, out, 3)
	})
}
