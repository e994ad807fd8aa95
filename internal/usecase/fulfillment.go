package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/polkiloo/atelier/internal/domain/model"
	"github.com/polkiloo/atelier/internal/domain/repository"
)

// FulfillmentUseCase tracks the workflow stage of every purchased line item.
type FulfillmentUseCase struct {
	statuses repository.ItemStatusRepository
	orders   *OrderUseCase
}

// NewFulfillmentUseCase constructs FulfillmentUseCase.
func NewFulfillmentUseCase(statuses repository.ItemStatusRepository, orders *OrderUseCase) *FulfillmentUseCase {
	return &FulfillmentUseCase{statuses: statuses, orders: orders}
}

// StatusCatalog lists the stages in workflow order.
func (u *FulfillmentUseCase) StatusCatalog() []model.StatusEntry {
	return model.ItemStatusCatalog()
}

// LabelFor returns the display label of key, or the awaiting_intake label.
func (u *FulfillmentUseCase) LabelFor(key model.ItemStatus) string {
	return key.Label()
}

// InitializeStatus stores awaiting_intake unless a status is already present.
func (u *FulfillmentUseCase) InitializeStatus(ctx context.Context, itemID int64) error {
	return u.statuses.Initialize(ctx, itemID, model.ItemStatusAwaitingIntake)
}

// CurrentStatus returns the stored status or awaiting_intake.
func (u *FulfillmentUseCase) CurrentStatus(ctx context.Context, itemID int64) (model.ItemStatus, error) {
	status, err := u.statuses.Get(ctx, itemID)
	if err != nil {
		return "", err
	}
	return status.OrDefault(), nil
}

// UpdateStatuses applies edits keyed by line item id. Unknown status keys and
// missing items are skipped. Returns the ids that were written, ascending.
func (u *FulfillmentUseCase) UpdateStatuses(ctx context.Context, edits map[int64]model.ItemStatus) ([]int64, error) {
	ids := make([]int64, 0, len(edits))
	for id := range edits {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	applied := make([]int64, 0, len(ids))
	for _, id := range ids {
		status := edits[id]
		if !status.Known() {
			continue
		}
		event, err := newEvent(ctx, model.AggregateLineItem, strconv.FormatInt(id, 10), model.EventLineItemStatusChanged, lineItemStatusPayload{
			LineItemID: id,
			Status:     string(status),
			Label:      status.Label(),
		})
		if err != nil {
			return applied, err
		}
		ok, err := u.statuses.Set(ctx, id, status, event)
		if err != nil {
			return applied, fmt.Errorf("set status of item %d: %w", id, err)
		}
		if ok {
			applied = append(applied, id)
		}
	}
	return applied, nil
}

// UpdateOrderStatuses restricts edits to the line items of orderID.
func (u *FulfillmentUseCase) UpdateOrderStatuses(ctx context.Context, orderID int64, edits map[int64]model.ItemStatus) ([]int64, error) {
	order, err := u.orders.ByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	scoped := make(map[int64]model.ItemStatus, len(edits))
	for _, item := range order.Items {
		if status, ok := edits[item.ID]; ok {
			scoped[item.ID] = status
		}
	}
	return u.UpdateStatuses(ctx, scoped)
}

// OrderItems returns the customer's line items with their effective status.
func (u *FulfillmentUseCase) OrderItems(ctx context.Context, customerID, orderID int64) ([]model.LineItem, error) {
	order, err := u.orders.Get(ctx, customerID, orderID)
	if err != nil {
		return nil, err
	}
	items := make([]model.LineItem, len(order.Items))
	for i, item := range order.Items {
		item.Status = item.Status.OrDefault()
		items[i] = item
	}
	return items, nil
}
