package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/polkiloo/atelier/internal/domain/model"
)

type appointmentBookedPayload struct {
	AppointmentID string `json:"appointment_id"`
	OrderID       int64  `json:"order_id"`
	CustomerID    int64  `json:"customer_id"`
	Date          string `json:"date"`
	Slot          string `json:"slot"`
}

type lineItemStatusPayload struct {
	LineItemID int64  `json:"line_item_id"`
	Status     string `json:"status"`
	Label      string `json:"label"`
}

// newEvent builds an outbox event carrying the caller's trace context.
func newEvent(ctx context.Context, aggregateType, aggregateID, eventType string, payload any) (model.OutboxEvent, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return model.OutboxEvent{}, fmt.Errorf("encode %s payload: %w", eventType, err)
	}
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	return model.OutboxEvent{
		EventID:       uuid.New(),
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Payload:       body,
		TraceContext:  map[string]string(carrier),
	}, nil
}
