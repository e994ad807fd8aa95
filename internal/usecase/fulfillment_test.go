package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
	testhelpers "github.com/polkiloo/atelier/internal/test"
)

func TestFulfillmentCatalogAndLabels(t *testing.T) {
	uc := NewFulfillmentUseCase(testhelpers.NewItemStatusRepositoryStub(), NewOrderUseCase(testhelpers.NewOrderRepositoryStub()))

	catalog := uc.StatusCatalog()
	require.Len(t, catalog, 7)
	assert.Equal(t, model.ItemStatusAwaitingIntake, catalog[0].Key)
	assert.Equal(t, model.ItemStatusDelivered, catalog[6].Key)

	assert.Equal(t, "Ready for pickup/shipping", uc.LabelFor(model.ItemStatusReadyForPickupOrShipping))
	assert.Equal(t, "Awaiting intake", uc.LabelFor("bogus_key"))
}

func TestFulfillmentInitializeIsSetIfAbsent(t *testing.T) {
	statuses := testhelpers.NewItemStatusRepositoryStub(1, 2)
	statuses.Statuses[2] = model.ItemStatusCustomerFitting
	uc := NewFulfillmentUseCase(statuses, NewOrderUseCase(testhelpers.NewOrderRepositoryStub()))
	ctx := context.Background()

	require.NoError(t, uc.InitializeStatus(ctx, 1))
	require.NoError(t, uc.InitializeStatus(ctx, 2))

	got, err := uc.CurrentStatus(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.ItemStatusAwaitingIntake, got)

	got, err = uc.CurrentStatus(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, model.ItemStatusCustomerFitting, got)
}

func TestFulfillmentCurrentStatusDefaults(t *testing.T) {
	uc := NewFulfillmentUseCase(testhelpers.NewItemStatusRepositoryStub(9), NewOrderUseCase(testhelpers.NewOrderRepositoryStub()))
	got, err := uc.CurrentStatus(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, model.ItemStatusAwaitingIntake, got)

	_, err = uc.CurrentStatus(context.Background(), 10)
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestFulfillmentUpdateStatusesSkipsUnknown(t *testing.T) {
	statuses := testhelpers.NewItemStatusRepositoryStub(1, 2, 3)
	uc := NewFulfillmentUseCase(statuses, NewOrderUseCase(testhelpers.NewOrderRepositoryStub()))

	applied, err := uc.UpdateStatuses(context.Background(), map[int64]model.ItemStatus{
		1:  model.ItemStatusDelivered,
		2:  "not_a_real_status",
		3:  model.ItemStatusAwaitingIntake,
		99: model.ItemStatusFinalFinishing,
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, applied)
	assert.Equal(t, model.ItemStatusDelivered, statuses.Statuses[1])
	assert.Equal(t, model.ItemStatus(""), statuses.Statuses[2])

	require.Len(t, statuses.Events, 2)
	assert.Equal(t, model.EventLineItemStatusChanged, statuses.Events[0].EventType)
	assert.Equal(t, "1", statuses.Events[0].AggregateID)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(statuses.Events[0].Payload, &payload))
	assert.Equal(t, "Delivered", payload["label"])
}

func TestFulfillmentUpdateStatusesAllowsAnyTransition(t *testing.T) {
	statuses := testhelpers.NewItemStatusRepositoryStub(1)
	statuses.Statuses[1] = model.ItemStatusDelivered
	uc := NewFulfillmentUseCase(statuses, NewOrderUseCase(testhelpers.NewOrderRepositoryStub()))

	applied, err := uc.UpdateStatuses(context.Background(), map[int64]model.ItemStatus{1: model.ItemStatusAwaitingIntake})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, applied)
	assert.Equal(t, model.ItemStatusAwaitingIntake, statuses.Statuses[1])
}

func TestFulfillmentUpdateStatusesStoreError(t *testing.T) {
	statuses := testhelpers.NewItemStatusRepositoryStub(1)
	statuses.SetErr = errors.New("down")
	uc := NewFulfillmentUseCase(statuses, NewOrderUseCase(testhelpers.NewOrderRepositoryStub()))

	_, err := uc.UpdateStatuses(context.Background(), map[int64]model.ItemStatus{1: model.ItemStatusDelivered})
	assert.Error(t, err)
}

func TestFulfillmentOrderScopedUpdatesAndItems(t *testing.T) {
	orders := testhelpers.NewOrderRepositoryStub()
	orders.LeaveStatusEmpty = true
	ctx := context.Background()
	mine, _ := orders.Create(ctx, 1, []model.CheckoutItem{{ProductName: "boots", Quantity: 1}})
	other, _ := orders.Create(ctx, 2, []model.CheckoutItem{{ProductName: "belt", Quantity: 1}})

	statuses := testhelpers.NewItemStatusRepositoryStub(mine.Items[0].ID, other.Items[0].ID)
	uc := NewFulfillmentUseCase(statuses, NewOrderUseCase(orders))

	applied, err := uc.UpdateOrderStatuses(ctx, mine.ID, map[int64]model.ItemStatus{
		mine.Items[0].ID:  model.ItemStatusPrototypeInProgress,
		other.Items[0].ID: model.ItemStatusDelivered,
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{mine.Items[0].ID}, applied)

	_, err = uc.UpdateOrderStatuses(ctx, 404, map[int64]model.ItemStatus{})
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)

	items, err := uc.OrderItems(ctx, 1, mine.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, model.ItemStatusAwaitingIntake, items[0].Status)

	_, err = uc.OrderItems(ctx, 2, mine.ID)
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}
