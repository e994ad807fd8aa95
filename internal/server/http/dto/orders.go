package dto

import (
	"time"

	"github.com/polkiloo/atelier/internal/domain/model"
)

// LineItemResponse shows a purchased product with its fulfillment stage.
type LineItemResponse struct {
	ID          int64  `json:"id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
}

// OrderAppointmentResponse is the appointment metadata shown with an order.
type OrderAppointmentResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Slot string `json:"slot"`
}

// OrderResponse represents an order returned to the customer.
type OrderResponse struct {
	ID          int64                     `json:"id"`
	CreatedAt   string                    `json:"created_at"`
	Appointment *OrderAppointmentResponse `json:"appointment,omitempty"`
	Items       []LineItemResponse        `json:"items"`
}

// NewLineItemResponse converts a line item, mapping unknown statuses to the default.
func NewLineItemResponse(li model.LineItem) LineItemResponse {
	status := li.Status.OrDefault()
	return LineItemResponse{
		ID:          li.ID,
		ProductName: li.ProductName,
		Quantity:    li.Quantity,
		Status:      string(status),
		StatusLabel: status.Label(),
	}
}

// NewOrderResponse converts an order.
func NewOrderResponse(o model.Order) OrderResponse {
	resp := OrderResponse{
		ID:        o.ID,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
		Items:     make([]LineItemResponse, 0, len(o.Items)),
	}
	if o.Appointment != nil {
		resp.Appointment = &OrderAppointmentResponse{
			ID:   o.Appointment.ID.String(),
			Date: o.Appointment.Date,
			Slot: string(o.Appointment.Slot),
		}
	}
	for _, li := range o.Items {
		resp.Items = append(resp.Items, NewLineItemResponse(li))
	}
	return resp
}
