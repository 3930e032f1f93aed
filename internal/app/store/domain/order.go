package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Known order statuses. The store does not enforce a transition state
// machine; UpdateOrderStatus accepts any string value.
const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// LineItem is a single (product, quantity) pairing captured at order
// submission time. Price is the unit price at submission, decoupled from any
// later product mutation.
type LineItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     *Money `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Order is an append-only fact: line items and monetary totals are frozen at
// creation and never recomputed. Only Status may change afterward.
type Order struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   *string   `json:"customerPhone"`
	ShippingAddress string    `json:"shippingAddress"`
	ShippingCity    string    `json:"shippingCity"`
	ShippingState   string    `json:"shippingState"`
	ShippingZip     string    `json:"shippingZip"`
	Items           string    `json:"items"`
	Subtotal        *Money    `json:"subtotal"`
	Shipping        *Money    `json:"shipping"`
	Tax             *Money    `json:"tax"`
	Total           *Money    `json:"total"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// EncodeLineItems serializes line items into the string-encoded snapshot
// stored on an order. The confirmation view decodes this back, so the
// round-trip must be exact.
func EncodeLineItems(items []LineItem) (string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to encode line items: %w", err)
	}
	return string(data), nil
}

// DecodeLineItems parses a string-encoded line-items snapshot.
func DecodeLineItems(encoded string) ([]LineItem, error) {
	var items []LineItem
	if err := json.Unmarshal([]byte(encoded), &items); err != nil {
		return nil, fmt.Errorf("failed to decode line items: %w", err)
	}
	return items, nil
}

// LineItems decodes the order's frozen snapshot.
func (o *Order) LineItems() ([]LineItem, error) {
	return DecodeLineItems(o.Items)
}

// Copy returns a deep copy of the order.
func (o *Order) Copy() *Order {
	cp := *o
	if o.CustomerPhone != nil {
		phone := *o.CustomerPhone
		cp.CustomerPhone = &phone
	}
	cp.Subtotal = o.Subtotal.Copy()
	cp.Shipping = o.Shipping.Copy()
	cp.Tax = o.Tax.Copy()
	cp.Total = o.Total.Copy()
	return &cp
}
