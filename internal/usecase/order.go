package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
	"github.com/polkiloo/atelier/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Place validates the cart and persists the order with its line items.
func (u *OrderUseCase) Place(ctx context.Context, customerID int64, items []model.CheckoutItem) (*model.Order, error) {
	if err := ValidateCheckoutItems(items); err != nil {
		return nil, err
	}
	return u.orders.Create(ctx, customerID, items)
}

// ListByCustomer returns orders newest first.
func (u *OrderUseCase) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	return u.orders.ListByCustomer(ctx, customerID)
}

// ByID returns any order regardless of owner. Staff use only.
func (u *OrderUseCase) ByID(ctx context.Context, orderID int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, orderID)
}

// Get returns the order only when it belongs to customerID.
func (u *OrderUseCase) Get(ctx context.Context, customerID, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

// OrderAppointment returns the fitting booked for the customer's order, or nil
// when the order has none yet.
func (u *OrderUseCase) OrderAppointment(ctx context.Context, customerID, orderID int64) (*model.OrderAppointment, error) {
	order, err := u.Get(ctx, customerID, orderID)
	if err != nil {
		return nil, err
	}
	return order.Appointment, nil
}
