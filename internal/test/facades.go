package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/polkiloo/atelier/internal/domain/model"
)

// BookingFacadeStub provides controllable behaviour for customer endpoints.
type BookingFacadeStub struct {
	SlotsFn      func(context.Context, string) ([]model.Slot, error)
	CheckoutFn   func(context.Context, int64, model.CheckoutRequest) (*model.CheckoutResult, error)
	OrdersFn     func(context.Context, int64) ([]model.Order, error)
	OrderItemsFn func(context.Context, int64, int64) ([]model.LineItem, error)
	RebookFn     func(context.Context, int64, int64, string, model.Slot) (*model.Appointment, error)
	ApptFn       func(context.Context, int64, int64) (*model.OrderAppointment, error)
}

func (s BookingFacadeStub) AvailableSlots(ctx context.Context, date string) ([]model.Slot, error) {
	if s.SlotsFn != nil {
		return s.SlotsFn(ctx, date)
	}
	return []model.Slot{"09:00", "10:00"}, nil
}

func (s BookingFacadeStub) Checkout(ctx context.Context, customerID int64, req model.CheckoutRequest) (*model.CheckoutResult, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, customerID, req)
	}
	return &model.CheckoutResult{
		Order:       &model.Order{ID: 1, CustomerID: customerID, CreatedAt: time.Unix(0, 0)},
		Appointment: model.AppointmentOutcome{Booked: true},
	}, nil
}

func (s BookingFacadeStub) Orders(ctx context.Context, customerID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, customerID)
	}
	return []model.Order{{ID: 1, CustomerID: customerID, CreatedAt: time.Unix(0, 0)}}, nil
}

func (s BookingFacadeStub) OrderItems(ctx context.Context, customerID, orderID int64) ([]model.LineItem, error) {
	if s.OrderItemsFn != nil {
		return s.OrderItemsFn(ctx, customerID, orderID)
	}
	return []model.LineItem{{ID: 1, OrderID: orderID, ProductName: "boots", Quantity: 1, Status: model.ItemStatusAwaitingIntake}}, nil
}

func (s BookingFacadeStub) OrderAppointment(ctx context.Context, customerID, orderID int64) (*model.OrderAppointment, error) {
	if s.ApptFn != nil {
		return s.ApptFn(ctx, customerID, orderID)
	}
	return nil, nil
}

func (s BookingFacadeStub) RebookAppointment(ctx context.Context, customerID, orderID int64, date string, slot model.Slot) (*model.Appointment, error) {
	if s.RebookFn != nil {
		return s.RebookFn(ctx, customerID, orderID, date, slot)
	}
	return &model.Appointment{Date: date, Slot: slot, OrderID: &orderID, CustomerID: customerID, Status: model.AppointmentStatusBooked}, nil
}

// StaffFacadeStub simulates staff operations.
type StaffFacadeStub struct {
	AppointmentsFn func(context.Context, string) ([]model.Appointment, error)
	UpdateFn       func(context.Context, int64, map[int64]model.ItemStatus) ([]int64, error)
}

func (s StaffFacadeStub) Appointments(ctx context.Context, date string) ([]model.Appointment, error) {
	if s.AppointmentsFn != nil {
		return s.AppointmentsFn(ctx, date)
	}
	return nil, nil
}

func (s StaffFacadeStub) StatusCatalog() []model.StatusEntry {
	return model.ItemStatusCatalog()
}

func (s StaffFacadeStub) UpdateItemStatuses(ctx context.Context, orderID int64, edits map[int64]model.ItemStatus) ([]int64, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, orderID, edits)
	}
	return []int64{}, nil
}

// EventSourceStub hands out configured batches of outbox events.
type EventSourceStub struct {
	Batches   [][]model.OutboxEvent
	ClaimFn   func(context.Context, int) ([]model.OutboxEvent, error)
	MarkFn    func(context.Context, int64) error
	Published []int64

	mu         sync.Mutex
	claimCalls int32
}

func (s *EventSourceStub) ClaimEvents(ctx context.Context, limit int) ([]model.OutboxEvent, error) {
	if s.ClaimFn != nil {
		return s.ClaimFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.claimCalls, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

func (s *EventSourceStub) MarkEventPublished(ctx context.Context, id int64) error {
	if s.MarkFn != nil {
		return s.MarkFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Published = append(s.Published, id)
	return nil
}

// PublishedIDs returns a snapshot of marked event ids.
func (s *EventSourceStub) PublishedIDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int64, len(s.Published))
	copy(out, s.Published)
	return out
}

// PublisherStub records published events.
type PublisherStub struct {
	Err error

	mu     sync.Mutex
	Events []model.OutboxEvent
}

func (p *PublisherStub) Publish(ctx context.Context, event model.OutboxEvent) error {
	if p.Err != nil {
		return p.Err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, event)
	return nil
}

// Count returns the number of published events.
func (p *PublisherStub) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Events)
}
