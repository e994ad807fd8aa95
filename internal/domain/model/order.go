package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderAppointment is the appointment metadata stored on the order itself.
type OrderAppointment struct {
	ID   uuid.UUID
	Date string
	Slot Slot
}

// Order describes a placed purchase.
type Order struct {
	ID          int64
	CustomerID  int64
	Appointment *OrderAppointment
	Items       []LineItem
	CreatedAt   time.Time
}

// LineItem is a purchased product with its fulfillment status.
// Status is empty until initialized.
type LineItem struct {
	ID          int64
	OrderID     int64
	ProductName string
	Quantity    int
	Status      ItemStatus
}

// CheckoutItem is a cart entry submitted at checkout.
type CheckoutItem struct {
	ProductName string
	Quantity    int
}

// CheckoutRequest carries everything the customer submits at checkout.
type CheckoutRequest struct {
	Items           []CheckoutItem
	AppointmentDate string
	AppointmentSlot Slot
}

// AppointmentOutcome reports what happened to the appointment after the order was placed.
type AppointmentOutcome struct {
	Booked      bool
	Appointment *Appointment
	Reason      string
}

// CheckoutResult is returned once the order is committed.
type CheckoutResult struct {
	Order       *Order
	Appointment AppointmentOutcome
}
