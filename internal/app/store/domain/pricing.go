package domain

import "math/big"

// Pricing constants. The threshold is inclusive: a subtotal of exactly 50.00
// ships free.
var (
	FreeShippingThreshold = FromCents(5000)
	FlatShippingRate      = FromCents(599)
	TaxRate               = big.NewRat(8, 100)
)

// CartTotals is the output of the pricing engine. ItemCount is the summed
// quantity across lines, used for display only.
type CartTotals struct {
	Subtotal  *Money `json:"subtotal"`
	Shipping  *Money `json:"shipping"`
	Tax       *Money `json:"tax"`
	Total     *Money `json:"total"`
	ItemCount int    `json:"itemCount"`
}

// ComputeTotals maps a cart's item list to its monetary totals. It is a pure
// function recomputed from the full item list on every mutation, so the
// totals can never drift from the cart contents.
//
// Rules: shipping is zero for an empty cart or when the subtotal meets the
// free-shipping threshold, otherwise the flat rate applies; tax is computed
// on the subtotal only (never on shipping) and rounded half away from zero
// to two decimals.
func ComputeTotals(items []CartItem) CartTotals {
	subtotal := Zero()
	itemCount := 0
	for _, item := range items {
		subtotal = subtotal.Add(item.Product.Price.MulInt(int64(item.Quantity)))
		itemCount += item.Quantity
	}

	shipping := Zero()
	if itemCount > 0 && subtotal.LessThan(FreeShippingThreshold) {
		shipping = FlatShippingRate.Copy()
	}

	tax := subtotal.MulRat(TaxRate).RoundTo(2)

	return CartTotals{
		Subtotal:  subtotal,
		Shipping:  shipping,
		Tax:       tax,
		Total:     subtotal.Add(shipping).Add(tax),
		ItemCount: itemCount,
	}
}
