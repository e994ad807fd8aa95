package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
	testhelpers "github.com/polkiloo/atelier/internal/test"
)

func TestOrderUseCasePlaceRejectsInvalidCart(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{CreateFn: func(context.Context, int64, []model.CheckoutItem) (*model.Order, error) {
		t.Error("create should not be called for invalid cart")
		return nil, nil
	}}
	uc := NewOrderUseCase(repo)

	_, err := uc.Place(context.Background(), 1, nil)
	assert.ErrorIs(t, err, domainErrors.ErrEmptyCart)

	_, err = uc.Place(context.Background(), 1, []model.CheckoutItem{{ProductName: "boots", Quantity: -1}})
	assert.ErrorIs(t, err, domainErrors.ErrInvalidQuantity)
}

func TestOrderUseCasePlaceAndGet(t *testing.T) {
	uc := NewOrderUseCase(testhelpers.NewOrderRepositoryStub())
	ctx := context.Background()

	order, err := uc.Place(ctx, 7, []model.CheckoutItem{{ProductName: "boots", Quantity: 2}, {ProductName: "insoles", Quantity: 1}})
	require.NoError(t, err)
	assert.Len(t, order.Items, 2)

	got, err := uc.Get(ctx, 7, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = uc.Get(ctx, 8, order.ID)
	assert.ErrorIs(t, err, domainErrors.ErrNotFound, "foreign orders are hidden")

	list, err := uc.ListByCustomer(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestOrderUseCaseOrderAppointment(t *testing.T) {
	repo := testhelpers.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)
	ctx := context.Background()

	order, err := uc.Place(ctx, 7, testhelpers.RandomCart(1))
	require.NoError(t, err)

	appt, err := uc.OrderAppointment(ctx, 7, order.ID)
	require.NoError(t, err)
	assert.Nil(t, appt)

	require.NoError(t, repo.Attach(order.ID, model.OrderAppointment{Date: "2024-03-15", Slot: "12:00"}))
	appt, err = uc.OrderAppointment(ctx, 7, order.ID)
	require.NoError(t, err)
	require.NotNil(t, appt)
	assert.Equal(t, model.Slot("12:00"), appt.Slot)

	_, err = uc.OrderAppointment(ctx, 7, 999)
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
	_, err = uc.OrderAppointment(ctx, 8, order.ID)
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}
