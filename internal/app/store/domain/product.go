package domain

import (
	"math"
	"strings"
)

// Categories is the closed set of categories the storefront sells.
// Filtering by any other value is legal and yields an empty result.
var Categories = []string{
	"Pottery",
	"Kitchen",
	"Home Decor",
	"Bath & Body",
	"Candles",
}

// Product is a catalog record. Rating and ReviewCount are derived fields
// owned by the store: they are recomputed on every review creation and are
// never settable by callers.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         *Money  `json:"price"`
	OriginalPrice *Money  `json:"originalPrice"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"reviewCount"`
	InStock       bool    `json:"inStock"`
	Featured      bool    `json:"featured"`
}

// OnSale reports whether the product carries a pre-discount reference price
// greater than its current price.
func (p *Product) OnSale() bool {
	return p.OriginalPrice != nil && p.OriginalPrice.GreaterThan(p.Price)
}

// DiscountPercent returns the whole-percent saving implied by OriginalPrice,
// or 0 when the product is not on sale.
func (p *Product) DiscountPercent() int {
	if !p.OnSale() {
		return 0
	}
	saving := p.OriginalPrice.Sub(p.Price).Float64()
	return int(math.Round(saving / p.OriginalPrice.Float64() * 100))
}

// MatchesQuery reports whether the query is a case-insensitive substring of
// the product's name, description, or category. An empty query matches.
func (p *Product) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

// Copy returns a deep copy of the product.
func (p *Product) Copy() *Product {
	cp := *p
	cp.Price = p.Price.Copy()
	if p.OriginalPrice != nil {
		cp.OriginalPrice = p.OriginalPrice.Copy()
	}
	return &cp
}

// AggregateRating computes the derived rating fields for a set of review
// ratings: the arithmetic mean rounded to one decimal place (half away from
// zero) and the review tally. No reviews yields (0, 0).
func AggregateRating(ratings []int) (rating float64, count int) {
	if len(ratings) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	mean := float64(sum) / float64(len(ratings))
	return math.Round(mean*10) / 10, len(ratings)
}
