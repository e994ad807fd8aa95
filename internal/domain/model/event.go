package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	AggregateAppointment = "appointment"
	AggregateLineItem    = "line_item"

	EventAppointmentBooked     = "appointment.booked"
	EventLineItemStatusChanged = "line_item.status_changed"
)

// OutboxEvent is a domain event stored alongside the change that produced it
// and relayed to the message broker later.
type OutboxEvent struct {
	ID            int64
	EventID       uuid.UUID
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
	TraceContext  map[string]string
	CreatedAt     time.Time
}
