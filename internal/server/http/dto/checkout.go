package dto

import "github.com/polkiloo/atelier/internal/domain/model"

// CheckoutItemRequest is one cart entry.
type CheckoutItemRequest struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// CheckoutRequest is the payload of POST /api/checkout.
type CheckoutRequest struct {
	Items           []CheckoutItemRequest `json:"items"`
	AppointmentDate string                `json:"appointment_date"`
	AppointmentSlot string                `json:"appointment_slot"`
}

// ToModel converts the payload into the domain request.
func (r CheckoutRequest) ToModel() model.CheckoutRequest {
	items := make([]model.CheckoutItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, model.CheckoutItem{ProductName: it.ProductName, Quantity: it.Quantity})
	}
	return model.CheckoutRequest{
		Items:           items,
		AppointmentDate: r.AppointmentDate,
		AppointmentSlot: model.Slot(r.AppointmentSlot),
	}
}

// AppointmentOutcomeResponse tells the customer whether the fitting was booked.
type AppointmentOutcomeResponse struct {
	Booked      bool                 `json:"booked"`
	Appointment *AppointmentResponse `json:"appointment,omitempty"`
	Reason      string               `json:"reason,omitempty"`
}

// CheckoutResponse is returned with 201 once the order is stored.
type CheckoutResponse struct {
	Order       OrderResponse              `json:"order"`
	Appointment AppointmentOutcomeResponse `json:"appointment"`
}

// NewCheckoutResponse converts a checkout result.
func NewCheckoutResponse(res *model.CheckoutResult) CheckoutResponse {
	out := CheckoutResponse{
		Appointment: AppointmentOutcomeResponse{
			Booked: res.Appointment.Booked,
			Reason: res.Appointment.Reason,
		},
	}
	if res.Order != nil {
		out.Order = NewOrderResponse(*res.Order)
	}
	if res.Appointment.Appointment != nil {
		appt := NewAppointmentResponse(*res.Appointment.Appointment)
		out.Appointment.Appointment = &appt
	}
	return out
}
