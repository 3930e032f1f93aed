package spannerstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/artisan-storefront/internal/app/store/domain"
	"github.com/light-bringer/artisan-storefront/internal/models/m_order"
	"github.com/light-bringer/artisan-storefront/internal/pkg/committer"
)

// GetOrder looks an order up by id.
func (s *Store) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	row, err := s.client.Single().ReadRow(ctx, m_order.TableName, spanner.Key{id}, m_order.AllColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to read order: %w", err)
	}

	var data m_order.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse order: %w", err)
	}
	return orderDataToDomain(&data), nil
}

// CreateOrder inserts the frozen order snapshot.
func (s *Store) CreateOrder(ctx context.Context, order *domain.Order) error {
	plan := committer.NewPlan()
	plan.Add(s.orders.InsertMut(orderDomainToData(order)))
	return s.committer.Apply(ctx, plan)
}

// UpdateOrderStatus replaces the status column and returns the updated
// order. Absent orders yield domain.ErrOrderNotFound.
func (s *Store) UpdateOrderStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	var updated *domain.Order

	err := s.committer.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		row, err := txn.ReadRow(ctx, m_order.TableName, spanner.Key{id}, m_order.AllColumns)
		if err != nil {
			if spanner.ErrCode(err) == codes.NotFound {
				return domain.ErrOrderNotFound
			}
			return fmt.Errorf("failed to read order: %w", err)
		}

		var data m_order.Data
		if err := row.ToStruct(&data); err != nil {
			return fmt.Errorf("failed to parse order: %w", err)
		}

		data.Status = status
		updated = orderDataToDomain(&data)

		return txn.BufferWrite([]*spanner.Mutation{
			s.orders.UpdateStatusMut(id, status),
		})
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func orderDataToDomain(data *m_order.Data) *domain.Order {
	order := &domain.Order{
		ID:              data.OrderID,
		CustomerName:    data.CustomerName,
		CustomerEmail:   data.CustomerEmail,
		ShippingAddress: data.ShippingAddress,
		ShippingCity:    data.ShippingCity,
		ShippingState:   data.ShippingState,
		ShippingZip:     data.ShippingZip,
		Items:           data.Items,
		Subtotal:        domain.FromCents(data.SubtotalCents),
		Shipping:        domain.FromCents(data.ShippingCents),
		Tax:             domain.FromCents(data.TaxCents),
		Total:           domain.FromCents(data.TotalCents),
		Status:          data.Status,
		CreatedAt:       data.CreatedAt,
	}
	if data.CustomerPhone.Valid {
		phone := data.CustomerPhone.StringVal
		order.CustomerPhone = &phone
	}
	return order
}

func orderDomainToData(order *domain.Order) *m_order.Data {
	data := &m_order.Data{
		OrderID:         order.ID,
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		ShippingAddress: order.ShippingAddress,
		ShippingCity:    order.ShippingCity,
		ShippingState:   order.ShippingState,
		ShippingZip:     order.ShippingZip,
		Items:           order.Items,
		SubtotalCents:   order.Subtotal.Cents(),
		ShippingCents:   order.Shipping.Cents(),
		TaxCents:        order.Tax.Cents(),
		TotalCents:      order.Total.Cents(),
		Status:          order.Status,
		CreatedAt:       order.CreatedAt,
	}
	if order.CustomerPhone != nil {
		data.CustomerPhone = spanner.NullString{StringVal: *order.CustomerPhone, Valid: true}
	}
	return data
}
