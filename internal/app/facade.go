package app

import (
	"context"
	"time"

	"github.com/polkiloo/atelier/internal/domain/model"
	"github.com/polkiloo/atelier/internal/domain/repository"
	"github.com/polkiloo/atelier/internal/usecase"
)

// outboxClaimLease bounds how long a claimed event stays invisible to other
// relays before it can be retried.
const outboxClaimLease = 30 * time.Second

// HealthChecker reports whether the record store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// AtelierFacade is the single entry point the HTTP layer and the outbox relay
// talk to.
type AtelierFacade struct {
	auth         *usecase.AuthUseCase
	orders       *usecase.OrderUseCase
	availability *usecase.AvailabilityUseCase
	appointments *usecase.AppointmentUseCase
	fulfillment  *usecase.FulfillmentUseCase
	checkout     *usecase.CheckoutUseCase
	outbox       repository.OutboxRepository
	health       HealthChecker
}

func NewAtelierFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	availability *usecase.AvailabilityUseCase,
	appointments *usecase.AppointmentUseCase,
	fulfillment *usecase.FulfillmentUseCase,
	checkout *usecase.CheckoutUseCase,
	outbox repository.OutboxRepository,
	health HealthChecker,
) *AtelierFacade {
	return &AtelierFacade{
		auth:         auth,
		orders:       orders,
		availability: availability,
		appointments: appointments,
		fulfillment:  fulfillment,
		checkout:     checkout,
		outbox:       outbox,
		health:       health,
	}
}

func (f *AtelierFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *AtelierFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *AtelierFacade) ParseToken(token string) (model.Principal, error) {
	return f.auth.ParseToken(token)
}

// AvailableSlots rejects malformed dates before touching the store.
func (f *AtelierFacade) AvailableSlots(ctx context.Context, date string) ([]model.Slot, error) {
	return f.availability.QuerySlots(ctx, date)
}

func (f *AtelierFacade) Checkout(ctx context.Context, customerID int64, req model.CheckoutRequest) (*model.CheckoutResult, error) {
	return f.checkout.Checkout(ctx, customerID, req)
}

func (f *AtelierFacade) Orders(ctx context.Context, customerID int64) ([]model.Order, error) {
	return f.orders.ListByCustomer(ctx, customerID)
}

func (f *AtelierFacade) OrderItems(ctx context.Context, customerID, orderID int64) ([]model.LineItem, error) {
	return f.fulfillment.OrderItems(ctx, customerID, orderID)
}

func (f *AtelierFacade) OrderAppointment(ctx context.Context, customerID, orderID int64) (*model.OrderAppointment, error) {
	return f.orders.OrderAppointment(ctx, customerID, orderID)
}

func (f *AtelierFacade) RebookAppointment(ctx context.Context, customerID, orderID int64, date string, slot model.Slot) (*model.Appointment, error) {
	return f.appointments.Rebook(ctx, customerID, orderID, date, slot)
}

func (f *AtelierFacade) Appointments(ctx context.Context, date string) ([]model.Appointment, error) {
	return f.appointments.ListByDate(ctx, date)
}

func (f *AtelierFacade) StatusCatalog() []model.StatusEntry {
	return f.fulfillment.StatusCatalog()
}

func (f *AtelierFacade) UpdateItemStatuses(ctx context.Context, orderID int64, edits map[int64]model.ItemStatus) ([]int64, error) {
	return f.fulfillment.UpdateOrderStatuses(ctx, orderID, edits)
}

func (f *AtelierFacade) ClaimEvents(ctx context.Context, limit int) ([]model.OutboxEvent, error) {
	return f.outbox.Claim(ctx, limit, outboxClaimLease)
}

func (f *AtelierFacade) MarkEventPublished(ctx context.Context, id int64) error {
	return f.outbox.MarkPublished(ctx, id)
}

func (f *AtelierFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
