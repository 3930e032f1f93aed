package domain

// CartItem pairs a product with a quantity inside a cart.
type CartItem struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}

// Cart holds a session's line items in insertion order. Carts are
// session-local values with no server-side persistence; each session owns
// its own cart and no shared-state coordination is needed.
type Cart struct {
	items []CartItem
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{items: make([]CartItem, 0)}
}

// Add puts a product into the cart. Adding a product already present
// increments its existing line's quantity rather than creating a duplicate
// line. Non-positive quantities are ignored.
func (c *Cart) Add(product *Product, quantity int) {
	if quantity <= 0 {
		return
	}
	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity += quantity
			return
		}
	}
	c.items = append(c.items, CartItem{Product: product, Quantity: quantity})
}

// SetQuantity replaces a line's quantity. A quantity of zero or below removes
// the line entirely; it is not an error and never leaves a negative state.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes a line from the cart.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the cart's line items.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Totals recomputes the cart's monetary totals from the current item list.
func (c *Cart) Totals() CartTotals {
	return ComputeTotals(c.items)
}

// LineItems converts the cart contents into an order snapshot.
func (c *Cart) LineItems() []LineItem {
	items := make([]LineItem, 0, len(c.items))
	for _, it := range c.items {
		items = append(items, LineItem{
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			Price:     it.Product.Price.Copy(),
			Quantity:  it.Quantity,
		})
	}
	return items
}
