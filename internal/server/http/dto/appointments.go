package dto

import (
	"time"

	"github.com/polkiloo/atelier/internal/domain/model"
)

// SlotsResponse lists free fitting slots for a date.
type SlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// NewSlotsResponse converts slots, never emitting a null list.
func NewSlotsResponse(date string, slots []model.Slot) SlotsResponse {
	out := SlotsResponse{Date: date, Slots: make([]string, 0, len(slots))}
	for _, s := range slots {
		out.Slots = append(out.Slots, string(s))
	}
	return out
}

// RebookRequest is the payload of POST /api/user/orders/:id/appointment.
type RebookRequest struct {
	Date string `json:"date"`
	Slot string `json:"slot"`
}

// AppointmentResponse represents a booked fitting.
type AppointmentResponse struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Slot       string `json:"slot"`
	OrderID    *int64 `json:"order_id,omitempty"`
	CustomerID int64  `json:"customer_id"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

// NewAppointmentResponse converts an appointment.
func NewAppointmentResponse(a model.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:         a.ID.String(),
		Date:       a.Date,
		Slot:       string(a.Slot),
		OrderID:    a.OrderID,
		CustomerID: a.CustomerID,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
}
