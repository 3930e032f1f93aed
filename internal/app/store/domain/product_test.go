package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_MatchesQuery(t *testing.T) {
	p := &Product{
		ID:          "p1",
		Name:        "Handwoven Ceramic Vase",
		Description: "A beautiful vase thrown on the wheel",
		Category:    "Pottery",
	}

	t.Run("matches name case-insensitively", func(t *testing.T) {
		assert.True(t, p.MatchesQuery("CERAMIC"))
		assert.True(t, p.MatchesQuery("ceramic"))
	})

	t.Run("matches description", func(t *testing.T) {
		assert.True(t, p.MatchesQuery("wheel"))
	})

	t.Run("matches category", func(t *testing.T) {
		assert.True(t, p.MatchesQuery("pottery"))
	})

	t.Run("empty query matches everything", func(t *testing.T) {
		assert.True(t, p.MatchesQuery(""))
	})

	t.Run("non-matching query", func(t *testing.T) {
		assert.False(t, p.MatchesQuery("candle"))
	})
}

func TestProduct_OnSale(t *testing.T) {
	t.Run("original price above price is a sale", func(t *testing.T) {
		p := &Product{Price: FromCents(4500), OriginalPrice: FromCents(6000)}
		assert.True(t, p.OnSale())
		assert.Equal(t, 25, p.DiscountPercent())
	})

	t.Run("no original price is not a sale", func(t *testing.T) {
		p := &Product{Price: FromCents(4500)}
		assert.False(t, p.OnSale())
		assert.Equal(t, 0, p.DiscountPercent())
	})
}

func TestAggregateRating(t *testing.T) {
	t.Run("rounds mean to one decimal", func(t *testing.T) {
		// (5 + 5 + 4) / 3 = 4.666... -> 4.7
		rating, count := AggregateRating([]int{5, 5, 4})
		assert.Equal(t, 4.7, rating)
		assert.Equal(t, 3, count)
	})

	t.Run("no reviews yields zero", func(t *testing.T) {
		rating, count := AggregateRating(nil)
		assert.Equal(t, 0.0, rating)
		assert.Equal(t, 0, count)
	})

	t.Run("single review is exact", func(t *testing.T) {
		rating, count := AggregateRating([]int{4})
		assert.Equal(t, 4.0, rating)
		assert.Equal(t, 1, count)
	})
}

func TestProduct_Copy(t *testing.T) {
	p := &Product{
		ID:            "p1",
		Name:          "Vase",
		Price:         FromCents(4500),
		OriginalPrice: FromCents(6000),
	}

	cp := p.Copy()
	cp.Name = "Bowl"
	cp.Price = FromCents(100)

	assert.Equal(t, "Vase", p.Name)
	assert.Equal(t, "45.00", p.Price.String())
}
