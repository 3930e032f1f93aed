package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProduct(id string, priceCents int64) *Product {
	return &Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    FromCents(priceCents),
		Category: "Pottery",
		InStock:  true,
	}
}

func TestComputeTotals(t *testing.T) {
	t.Run("empty cart is all zeros", func(t *testing.T) {
		totals := ComputeTotals(nil)

		assert.True(t, totals.Subtotal.IsZero())
		assert.True(t, totals.Shipping.IsZero())
		assert.True(t, totals.Tax.IsZero())
		assert.True(t, totals.Total.IsZero())
		assert.Equal(t, 0, totals.ItemCount)
	})

	t.Run("below threshold pays flat shipping", func(t *testing.T) {
		// 25.50 subtotal: shipping 5.99, tax 2.04, total 33.53
		totals := ComputeTotals([]CartItem{
			{Product: testProduct("p1", 2550), Quantity: 1},
		})

		assert.Equal(t, "25.50", totals.Subtotal.String())
		assert.Equal(t, "5.99", totals.Shipping.String())
		assert.Equal(t, "2.04", totals.Tax.String())
		assert.Equal(t, "33.53", totals.Total.String())
		assert.Equal(t, 1, totals.ItemCount)
	})

	t.Run("threshold is inclusive", func(t *testing.T) {
		// exactly 50.00 ships free
		totals := ComputeTotals([]CartItem{
			{Product: testProduct("p1", 2500), Quantity: 2},
		})

		assert.Equal(t, "50.00", totals.Subtotal.String())
		assert.True(t, totals.Shipping.IsZero())
		assert.Equal(t, "4.00", totals.Tax.String())
		assert.Equal(t, "54.00", totals.Total.String())
	})

	t.Run("just below threshold still pays shipping", func(t *testing.T) {
		totals := ComputeTotals([]CartItem{
			{Product: testProduct("p1", 4999), Quantity: 1},
		})

		assert.Equal(t, "5.99", totals.Shipping.String())
	})

	t.Run("tax applies to subtotal only", func(t *testing.T) {
		// 10.00 subtotal: tax is 0.80, not 8% of 15.99
		totals := ComputeTotals([]CartItem{
			{Product: testProduct("p1", 1000), Quantity: 1},
		})

		assert.Equal(t, "0.80", totals.Tax.String())
		assert.Equal(t, "16.79", totals.Total.String())
	})

	t.Run("tax rounds to two decimals", func(t *testing.T) {
		// 24.44 * 0.08 = 1.9552 -> 1.96; 25.56 * 0.08 = 2.0448 -> 2.04
		up := ComputeTotals([]CartItem{{Product: testProduct("p1", 2444), Quantity: 1}})
		assert.Equal(t, "1.96", up.Tax.String())

		down := ComputeTotals([]CartItem{{Product: testProduct("p2", 2556), Quantity: 1}})
		assert.Equal(t, "2.04", down.Tax.String())

		mixed := ComputeTotals([]CartItem{
			{Product: testProduct("p3", 1099), Quantity: 3},
		})
		assert.Equal(t, "32.97", mixed.Subtotal.String())
		assert.Equal(t, "2.64", mixed.Tax.String())
	})

	t.Run("item count sums quantities", func(t *testing.T) {
		totals := ComputeTotals([]CartItem{
			{Product: testProduct("p1", 1000), Quantity: 2},
			{Product: testProduct("p2", 2000), Quantity: 3},
		})

		assert.Equal(t, 5, totals.ItemCount)
		assert.Equal(t, "80.00", totals.Subtotal.String())
	})
}
