package handlers

import (
	"context"

	"github.com/polkiloo/atelier/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (model.Principal, error)
}

// BookingFacade covers the customer-facing checkout and order endpoints.
type BookingFacade interface {
	AvailableSlots(ctx context.Context, date string) ([]model.Slot, error)
	Checkout(ctx context.Context, customerID int64, req model.CheckoutRequest) (*model.CheckoutResult, error)
	Orders(ctx context.Context, customerID int64) ([]model.Order, error)
	OrderItems(ctx context.Context, customerID, orderID int64) ([]model.LineItem, error)
	OrderAppointment(ctx context.Context, customerID, orderID int64) (*model.OrderAppointment, error)
	RebookAppointment(ctx context.Context, customerID, orderID int64, date string, slot model.Slot) (*model.Appointment, error)
}

// StaffFacade covers workshop administration.
type StaffFacade interface {
	Appointments(ctx context.Context, date string) ([]model.Appointment, error)
	StatusCatalog() []model.StatusEntry
	UpdateItemStatuses(ctx context.Context, orderID int64, edits map[int64]model.ItemStatus) ([]int64, error)
}

// HealthFacade reports readiness of backing services.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// AtelierFacade aggregates the full set of operations used across handlers.
type AtelierFacade interface {
	AuthFacade
	BookingFacade
	StaffFacade
	HealthFacade
}
