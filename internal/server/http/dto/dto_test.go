package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/atelier/internal/domain/model"
)

func TestCheckoutRequestToModel(t *testing.T) {
	req := CheckoutRequest{
		Items:           []CheckoutItemRequest{{ProductName: "boots", Quantity: 2}},
		AppointmentDate: "2024-03-15",
		AppointmentSlot: "10:00",
	}
	got := req.ToModel()
	require.Len(t, got.Items, 1)
	assert.Equal(t, "boots", got.Items[0].ProductName)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, model.Slot("10:00"), got.AppointmentSlot)
}

func TestNewOrderResponseMapsUnknownStatus(t *testing.T) {
	apptID := uuid.New()
	order := model.Order{
		ID:          4,
		CreatedAt:   time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Appointment: &model.OrderAppointment{ID: apptID, Date: "2024-03-15", Slot: "10:00"},
		Items: []model.LineItem{
			{ID: 1, ProductName: "boots", Quantity: 1, Status: model.ItemStatusDelivered},
			{ID: 2, ProductName: "belt", Quantity: 1, Status: "legacy_status"},
		},
	}

	resp := NewOrderResponse(order)
	assert.Equal(t, "2024-03-01T10:00:00Z", resp.CreatedAt)
	require.NotNil(t, resp.Appointment)
	assert.Equal(t, apptID.String(), resp.Appointment.ID)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Delivered", resp.Items[0].StatusLabel)
	assert.Equal(t, string(model.ItemStatusAwaitingIntake), resp.Items[1].Status)
	assert.Equal(t, "Awaiting intake", resp.Items[1].StatusLabel)
}

func TestNewCheckoutResponse(t *testing.T) {
	orderID := int64(4)
	res := &model.CheckoutResult{
		Order: &model.Order{ID: orderID},
		Appointment: model.AppointmentOutcome{
			Booked:      true,
			Appointment: &model.Appointment{ID: uuid.New(), Date: "2024-03-15", Slot: "09:00", OrderID: &orderID, Status: model.AppointmentStatusBooked},
		},
	}
	resp := NewCheckoutResponse(res)
	assert.Equal(t, orderID, resp.Order.ID)
	assert.True(t, resp.Appointment.Booked)
	require.NotNil(t, resp.Appointment.Appointment)
	assert.Equal(t, "09:00", resp.Appointment.Appointment.Slot)

	failed := NewCheckoutResponse(&model.CheckoutResult{
		Order:       &model.Order{ID: 5},
		Appointment: model.AppointmentOutcome{Reason: "slot taken"},
	})
	assert.False(t, failed.Appointment.Booked)
	assert.Nil(t, failed.Appointment.Appointment)
	assert.Equal(t, "slot taken", failed.Appointment.Reason)
}

func TestNewSlotsResponseNeverNull(t *testing.T) {
	resp := NewSlotsResponse("2024-03-15", nil)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestStatusUpdateRequestEdits(t *testing.T) {
	req := StatusUpdateRequest{Statuses: map[string]string{
		"10":  "delivered",
		"abc": "delivered",
		"-1":  "delivered",
		"11":  "unknown",
	}}
	edits := req.Edits()
	assert.Equal(t, map[int64]model.ItemStatus{10: model.ItemStatusDelivered, 11: "unknown"}, edits)
}

func TestStatusUpdateRequestEditsIgnoresNonCanonicalIDs(t *testing.T) {
	req := StatusUpdateRequest{Statuses: map[string]string{
		"1":   "delivered",
		"01":  "awaiting_intake",
		"+1":  "awaiting_intake",
		" 1":  "awaiting_intake",
		"002": "delivered",
	}}
	for i := 0; i < 20; i++ {
		assert.Equal(t, map[int64]model.ItemStatus{1: model.ItemStatusDelivered}, req.Edits())
	}
}

func TestNewStatusCatalogResponseKeepsOrder(t *testing.T) {
	resp := NewStatusCatalogResponse(model.ItemStatusCatalog())
	require.Len(t, resp, 7)
	assert.Equal(t, "awaiting_intake", resp[0].Key)
	assert.Equal(t, "delivered", resp[6].Key)
}
