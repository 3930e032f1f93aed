package create_order

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/light-bringer/artisan-storefront/internal/app/store/contracts"
	"github.com/light-bringer/artisan-storefront/internal/app/store/domain"
	"github.com/light-bringer/artisan-storefront/internal/pkg/clock"
)

// Request is a checkout submission. Monetary totals were computed by the
// cart at submission time and are stored as-is, never recomputed.
type Request struct {
	CustomerName    string  `validate:"required,min=2"`
	CustomerEmail   string  `validate:"required,email"`
	CustomerPhone   *string `validate:"-"`
	ShippingAddress string  `validate:"required,min=5"`
	ShippingCity    string  `validate:"required,min=2"`
	ShippingState   string  `validate:"required,min=2"`
	ShippingZip     string  `validate:"required,min=5"`
	Items           string  `validate:"required"`

	Subtotal *domain.Money
	Shipping *domain.Money
	Tax      *domain.Money
	Total    *domain.Money
}

// Interactor handles the create order use case.
type Interactor struct {
	store    contracts.OrderRepository
	validate *validator.Validate
	clock    clock.Clock
}

// NewInteractor creates a new create order interactor.
func NewInteractor(store contracts.OrderRepository, clk clock.Clock) *Interactor {
	return &Interactor{
		store:    store,
		validate: validator.New(),
		clock:    clk,
	}
}

// Execute re-validates the checkout payload independently of any client-side
// validation, then stores the order as an immutable snapshot with a fresh
// identifier, "pending" status, and a server-assigned timestamp. The full
// record is returned so the caller can redirect to a confirmation view keyed
// by the new identifier.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Order, error) {
	if err := i.validateRequest(req); err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:              uuid.New().String(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		ShippingCity:    req.ShippingCity,
		ShippingState:   req.ShippingState,
		ShippingZip:     req.ShippingZip,
		Items:           req.Items,
		Subtotal:        req.Subtotal.Copy(),
		Shipping:        req.Shipping.Copy(),
		Tax:             req.Tax.Copy(),
		Total:           req.Total.Copy(),
		Status:          domain.OrderStatusPending,
		CreatedAt:       i.clock.Now(),
	}

	if err := i.store.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}

	return order, nil
}

func (i *Interactor) validateRequest(req *Request) error {
	ve := domain.NewValidationError()

	if err := i.validate.Struct(req); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("failed to validate order: %w", err)
		}
		for _, fe := range verrs {
			switch fe.Field() {
			case "CustomerName":
				ve.Add("customerName", "name must be at least 2 characters")
			case "CustomerEmail":
				ve.Add("customerEmail", "must be a valid email address")
			case "ShippingAddress":
				ve.Add("shippingAddress", "address must be at least 5 characters")
			case "ShippingCity":
				ve.Add("shippingCity", "city must be at least 2 characters")
			case "ShippingState":
				ve.Add("shippingState", "state must be at least 2 characters")
			case "ShippingZip":
				ve.Add("shippingZip", "ZIP code must be at least 5 characters")
			case "Items":
				ve.Add("items", "line items are required")
			default:
				ve.Add(fe.Field(), fe.Tag())
			}
		}
	}

	// The snapshot must decode back into structured line items for the
	// confirmation view.
	if req.Items != "" {
		if items, err := domain.DecodeLineItems(req.Items); err != nil {
			ve.Add("items", "line items payload is not decodable")
		} else if len(items) == 0 {
			ve.Add("items", "order must contain at least one line item")
		}
	}

	for field, amount := range map[string]*domain.Money{
		"subtotal": req.Subtotal,
		"shipping": req.Shipping,
		"tax":      req.Tax,
		"total":    req.Total,
	} {
		if amount == nil {
			ve.Add(field, "amount is required")
		} else if amount.IsNegative() {
			ve.Add(field, "amount must be non-negative")
		}
	}

	if ve.Empty() {
		return nil
	}
	return ve
}
