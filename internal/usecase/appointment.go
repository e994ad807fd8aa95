package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
	"github.com/polkiloo/atelier/internal/domain/repository"
)

// AppointmentUseCase creates and lists fitting appointments.
type AppointmentUseCase struct {
	appointments repository.AppointmentRepository
	orders       repository.OrderRepository
	availability *AvailabilityUseCase
}

// NewAppointmentUseCase constructs AppointmentUseCase.
func NewAppointmentUseCase(appointments repository.AppointmentRepository, orders repository.OrderRepository, availability *AvailabilityUseCase) *AppointmentUseCase {
	return &AppointmentUseCase{appointments: appointments, orders: orders, availability: availability}
}

// Create books slot on date for an already persisted order. The store rejects a
// slot booked concurrently with ErrSlotUnavailable.
func (u *AppointmentUseCase) Create(ctx context.Context, orderID, customerID int64, date string, slot model.Slot) (*model.Appointment, error) {
	appt := &model.Appointment{
		ID:         uuid.New(),
		Date:       date,
		Slot:       slot,
		OrderID:    &orderID,
		CustomerID: customerID,
		Status:     model.AppointmentStatusBooked,
	}

	event, err := newEvent(ctx, model.AggregateAppointment, appt.ID.String(), model.EventAppointmentBooked, appointmentBookedPayload{
		AppointmentID: appt.ID.String(),
		OrderID:       orderID,
		CustomerID:    customerID,
		Date:          date,
		Slot:          string(slot),
	})
	if err != nil {
		return nil, err
	}

	if err := u.appointments.Create(ctx, appt, event); err != nil {
		return nil, err
	}
	return appt, nil
}

// ListByDate returns every appointment record on date.
func (u *AppointmentUseCase) ListByDate(ctx context.Context, date string) ([]model.Appointment, error) {
	if !ValidateDate(date) {
		return nil, domainErrors.ErrInvalidDate
	}
	return u.appointments.ListByDate(ctx, date)
}

// Rebook books a new slot for a customer's order that has no appointment yet.
func (u *AppointmentUseCase) Rebook(ctx context.Context, customerID, orderID int64, date string, slot model.Slot) (*model.Appointment, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, domainErrors.ErrNotFound
	}
	if order.Appointment != nil {
		return nil, domainErrors.ErrAlreadyExists
	}
	if date != "" && !ValidateDate(date) {
		return nil, domainErrors.ErrInvalidDate
	}
	if err := u.availability.ValidateSlotSelection(ctx, date, slot); err != nil {
		return nil, err
	}
	appt, err := u.Create(ctx, orderID, customerID, date, slot)
	if err != nil {
		if errors.Is(err, domainErrors.ErrSlotUnavailable) || errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("rebook appointment: %w", err)
	}
	return appt, nil
}
