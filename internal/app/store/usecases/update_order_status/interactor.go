package update_order_status

import (
	"context"

	"github.com/light-bringer/artisan-storefront/internal/app/store/contracts"
	"github.com/light-bringer/artisan-storefront/internal/app/store/domain"
)

// Request identifies the order and the replacement status. Any string value
// is accepted; no transition state machine is enforced.
type Request struct {
	OrderID string
	Status  string
}

// Interactor handles the update order status use case.
type Interactor struct {
	store contracts.OrderRepository
}

// NewInteractor creates a new update order status interactor.
func NewInteractor(store contracts.OrderRepository) *Interactor {
	return &Interactor{store: store}
}

// Execute replaces the order's status field and returns the updated order.
// An absent order yields domain.ErrOrderNotFound.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Order, error) {
	if req.Status == "" {
		return nil, domain.NewValidationError().Add("status", "status is required")
	}
	return i.store.UpdateOrderStatus(ctx, req.OrderID, req.Status)
}
