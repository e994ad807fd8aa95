package repository

import (
	"context"

	"github.com/polkiloo/atelier/internal/domain/model"
)

// AppointmentRepository persists appointment records.
type AppointmentRepository interface {
	// ListBookedSlots returns slots of booked appointments on date.
	ListBookedSlots(ctx context.Context, date string) ([]model.Slot, error)
	// Create inserts the appointment, links it to its order and records event
	// atomically. A taken (date, slot) yields ErrSlotUnavailable; an order that
	// already has an appointment yields ErrAlreadyExists.
	Create(ctx context.Context, appointment *model.Appointment, event model.OutboxEvent) error
	ListByDate(ctx context.Context, date string) ([]model.Appointment, error)
}
