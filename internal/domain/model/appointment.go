package model

import (
	"time"

	"github.com/google/uuid"
)

// Slot is an hour-long fitting window label in HH:00 format.
type Slot string

// AppointmentStatus describes appointment record state.
type AppointmentStatus string

const (
	// AppointmentStatusBooked holds its (date, slot) exclusively.
	AppointmentStatusBooked AppointmentStatus = "booked"
	// AppointmentStatusCancelled records are written by workshop operators
	// directly in the store; the service only reads them. They free their slot:
	// uq_appointments_date_slot and availability both consider booked rows only.
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a booked fitting linked to a customer and, once checkout
// completes, to an order.
type Appointment struct {
	ID         uuid.UUID
	Date       string
	Slot       Slot
	OrderID    *int64
	CustomerID int64
	Status     AppointmentStatus
	CreatedAt  time.Time
}
