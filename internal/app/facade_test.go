package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/polkiloo/atelier/internal/config"
	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
	testhelpers "github.com/polkiloo/atelier/internal/test"
	"github.com/polkiloo/atelier/internal/usecase"
)

type facadeFixture struct {
	facade       *AtelierFacade
	users        *testhelpers.UserRepositoryStub
	orders       *testhelpers.OrderRepositoryStub
	appointments *testhelpers.AppointmentRepositoryStub
	statuses     *testhelpers.ItemStatusRepositoryStub
	outbox       *testhelpers.OutboxRepositoryStub
}

func newFacade(health HealthChecker) facadeFixture {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	users := testhelpers.NewUserRepositoryStub()
	strategy := testhelpers.StrategyStub{ParseFn: func(string) (model.Principal, error) {
		return model.Principal{UserID: 99, Role: model.RoleStaff}, nil
	}}
	authUC := usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, strategy, &config.Config{StaffLogins: []string{"master"}, StaffPasswordHash: "hash:staff"})

	orders := testhelpers.NewOrderRepositoryStub()
	appointments := &testhelpers.AppointmentRepositoryStub{Orders: orders}
	statuses := testhelpers.NewItemStatusRepositoryStub(1, 2)
	outbox := &testhelpers.OutboxRepositoryStub{}

	orderUC := usecase.NewOrderUseCase(orders)
	availabilityUC := usecase.NewAvailabilityUseCase(appointments)
	appointmentUC := usecase.NewAppointmentUseCase(appointments, orders, availabilityUC)
	fulfillmentUC := usecase.NewFulfillmentUseCase(statuses, orderUC)
	checkoutUC := usecase.NewCheckoutUseCase(orderUC, availabilityUC, appointmentUC, fulfillmentUC, logger)

	facade := NewAtelierFacade(authUC, orderUC, availabilityUC, appointmentUC, fulfillmentUC, checkoutUC, outbox, health)
	return facadeFixture{
		facade:       facade,
		users:        users,
		orders:       orders,
		appointments: appointments,
		statuses:     statuses,
		outbox:       outbox,
	}
}

func TestAtelierFacadeAuth(t *testing.T) {
	fix := newFacade(testhelpers.HealthCheckerStub{})
	ctx := context.Background()

	token, err := fix.facade.Register(ctx, "master", "pass")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}
	stored, err := fix.users.GetByLogin(ctx, "master")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.Role != model.RoleCustomer {
		t.Fatalf("public registration must yield a customer, got %s", stored.Role)
	}

	if _, err := fix.facade.Authenticate(ctx, "master", "pass"); err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if _, err := fix.facade.Authenticate(ctx, "master", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	principal, err := fix.facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if principal.UserID != 99 || !principal.IsStaff() {
		t.Fatalf("unexpected principal %+v", principal)
	}
}

func TestAtelierFacadeCheckoutFlow(t *testing.T) {
	fix := newFacade(testhelpers.HealthCheckerStub{})
	ctx := context.Background()

	slots, err := fix.facade.AvailableSlots(ctx, "2024-03-15")
	if err != nil {
		t.Fatalf("available slots returned error: %v", err)
	}
	if len(slots) != 10 {
		t.Fatalf("expected 10 free slots, got %d", len(slots))
	}

	result, err := fix.facade.Checkout(ctx, 7, model.CheckoutRequest{
		Items:           []model.CheckoutItem{{ProductName: "boots", Quantity: 1}},
		AppointmentDate: "2024-03-15",
		AppointmentSlot: "10:00",
	})
	if err != nil {
		t.Fatalf("checkout returned error: %v", err)
	}
	if !result.Appointment.Booked {
		t.Fatalf("expected appointment booked, got %+v", result.Appointment)
	}

	slots, _ = fix.facade.AvailableSlots(ctx, "2024-03-15")
	for _, s := range slots {
		if s == "10:00" {
			t.Fatal("booked slot must no longer be available")
		}
	}

	orders, err := fix.facade.Orders(ctx, 7)
	if err != nil || len(orders) != 1 {
		t.Fatalf("expected one order, got %v err=%v", orders, err)
	}
	if orders[0].Appointment == nil || orders[0].Appointment.Slot != "10:00" {
		t.Fatalf("expected appointment metadata on order, got %+v", orders[0].Appointment)
	}

	items, err := fix.facade.OrderItems(ctx, 7, result.Order.ID)
	if err != nil || len(items) != 1 {
		t.Fatalf("unexpected items %v err=%v", items, err)
	}
	if _, err := fix.facade.OrderItems(ctx, 8, result.Order.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected foreign order to be hidden, got %v", err)
	}

	appt, err := fix.facade.OrderAppointment(ctx, 7, result.Order.ID)
	if err != nil || appt == nil || appt.Slot != "10:00" {
		t.Fatalf("expected order appointment, got %v err=%v", appt, err)
	}

	if _, err := fix.facade.RebookAppointment(ctx, 7, result.Order.ID, "2024-03-16", "11:00"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists on rebook, got %v", err)
	}

	appts, err := fix.facade.Appointments(ctx, "2024-03-15")
	if err != nil || len(appts) != 1 {
		t.Fatalf("expected one appointment, got %v err=%v", appts, err)
	}
	if _, err := fix.facade.Appointments(ctx, "15-03-2024"); !errors.Is(err, domainErrors.ErrInvalidDate) {
		t.Fatalf("expected invalid date, got %v", err)
	}
}

func TestAtelierFacadeAvailableSlotsRejectsBadDate(t *testing.T) {
	fix := newFacade(testhelpers.HealthCheckerStub{})
	if _, err := fix.facade.AvailableSlots(context.Background(), "2024/03/15"); !errors.Is(err, domainErrors.ErrInvalidDate) {
		t.Fatalf("expected invalid date, got %v", err)
	}
	if fix.appointments.ListCalls != 0 {
		t.Fatalf("expected no store call for malformed date, got %d", fix.appointments.ListCalls)
	}
}

func TestAtelierFacadeStaffStatuses(t *testing.T) {
	fix := newFacade(testhelpers.HealthCheckerStub{})
	ctx := context.Background()

	if got := fix.facade.StatusCatalog(); len(got) != 7 {
		t.Fatalf("expected 7 catalog entries, got %d", len(got))
	}

	result, err := fix.facade.Checkout(ctx, 7, model.CheckoutRequest{
		Items:           []model.CheckoutItem{{ProductName: "boots", Quantity: 1}, {ProductName: "belt", Quantity: 1}},
		AppointmentDate: "2024-03-15",
		AppointmentSlot: "09:00",
	})
	if err != nil {
		t.Fatalf("checkout returned error: %v", err)
	}

	first := result.Order.Items[0].ID
	updated, err := fix.facade.UpdateItemStatuses(ctx, result.Order.ID, map[int64]model.ItemStatus{
		first: model.ItemStatusCustomerFitting,
	})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if len(updated) != 1 || updated[0] != first {
		t.Fatalf("unexpected updated ids %v", updated)
	}
	if fix.statuses.Statuses[first] != model.ItemStatusCustomerFitting {
		t.Fatalf("status not stored, got %s", fix.statuses.Statuses[first])
	}

	if _, err := fix.facade.UpdateItemStatuses(ctx, 404, map[int64]model.ItemStatus{1: model.ItemStatusDelivered}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown order, got %v", err)
	}
}

func TestAtelierFacadeOutbox(t *testing.T) {
	fix := newFacade(testhelpers.HealthCheckerStub{})
	fix.outbox.Pending = []model.OutboxEvent{{ID: 1}, {ID: 2}, {ID: 3}}
	ctx := context.Background()

	events, err := fix.facade.ClaimEvents(ctx, 2)
	if err != nil || len(events) != 2 {
		t.Fatalf("unexpected claim %v err=%v", events, err)
	}
	if fix.outbox.Leases[0] != outboxClaimLease {
		t.Fatalf("expected claim lease %v, got %v", outboxClaimLease, fix.outbox.Leases[0])
	}

	if err := fix.facade.MarkEventPublished(ctx, 1); err != nil {
		t.Fatalf("mark published returned error: %v", err)
	}
	if len(fix.outbox.Published) != 1 || fix.outbox.Published[0] != 1 {
		t.Fatalf("unexpected published ids %v", fix.outbox.Published)
	}
}

func TestAtelierFacadeHealthCheck(t *testing.T) {
	fix := newFacade(testhelpers.HealthCheckerStub{})
	if err := fix.facade.HealthCheck(context.Background()); err != nil {
		t.Fatalf("expected healthy, got %v", err)
	}

	down := errors.New("db down")
	fix = newFacade(testhelpers.HealthCheckerStub{Err: down})
	if err := fix.facade.HealthCheck(context.Background()); !errors.Is(err, down) {
		t.Fatalf("expected db error, got %v", err)
	}
}
