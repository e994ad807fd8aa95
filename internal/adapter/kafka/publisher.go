package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/polkiloo/atelier/internal/domain/model"
)

// ErrNoBrokers is returned when the publisher is built without broker addresses.
var ErrNoBrokers = errors.New("kafka: no brokers configured")

const (
	headerEventID   = "event_id"
	headerEventType = "event_type"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher writes outbox events to Kafka. The topic is the event type and the
// key is the aggregate ID so events of one aggregate stay ordered.
type Publisher struct {
	writer messageWriter
}

// NewPublisher constructs a publisher backed by a kafka-go writer.
func NewPublisher(brokers []string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
	}
	return &Publisher{writer: w}, nil
}

// Publish sends one event and blocks until the broker acknowledges it.
func (p *Publisher) Publish(ctx context.Context, event model.OutboxEvent) error {
	msg := kafkago.Message{
		Topic: event.EventType,
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: headerEventID, Value: []byte(event.EventID.String())},
			{Key: headerEventType, Value: []byte(event.EventType)},
		},
	}
	msgCtx := otel.GetTextMapPropagator().Extract(ctx, propagation.MapCarrier(event.TraceContext))
	msg.Headers = injectTraceHeaders(msgCtx, msg.Headers)

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s message: %w", event.EventType, err)
	}
	return nil
}

// Close flushes pending writes and releases broker connections.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func injectTraceHeaders(ctx context.Context, headers []kafkago.Header) []kafkago.Header {
	carrier := &headerCarrier{headers: headers}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	return carrier.headers
}

type headerCarrier struct {
	headers []kafkago.Header
}

func (c *headerCarrier) Get(key string) string {
	for _, h := range c.headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c *headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c.headers))
	for _, h := range c.headers {
		keys = append(keys, h.Key)
	}
	return keys
}

func (c *headerCarrier) Set(key, value string) {
	for i := range c.headers {
		if c.headers[i].Key == key {
			c.headers[i].Value = []byte(value)
			return
		}
	}
	c.headers = append(c.headers, kafkago.Header{Key: key, Value: []byte(value)})
}

var _ propagation.TextMapCarrier = (*headerCarrier)(nil)
