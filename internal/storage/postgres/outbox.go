package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/atelier/internal/domain/model"
)

type outboxRepository struct {
	storage *Storage
}

func insertEvent(ctx context.Context, tx pgx.Tx, event model.OutboxEvent) error {
	traceContext := event.TraceContext
	if traceContext == nil {
		traceContext = map[string]string{}
	}
	carrier, err := json.Marshal(traceContext)
	if err != nil {
		return fmt.Errorf("encode trace context: %w", err)
	}
	const query = `INSERT INTO outbox_events (event_id, aggregate_type, aggregate_id, event_type, payload, trace_context)
                   VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.Exec(ctx, query,
		event.EventID.String(), event.AggregateType, event.AggregateID, event.EventType, event.Payload, carrier,
	); err != nil {
		return fmt.Errorf("insert outbox event: %w", err)
	}
	return nil
}

// Claim locks a batch with SKIP LOCKED so concurrent relays never receive the
// same rows, then stamps claimed_at. A claim older than lease is considered abandoned.
func (r *outboxRepository) Claim(ctx context.Context, limit int, lease time.Duration) ([]model.OutboxEvent, error) {
	const selectQuery = `SELECT id, event_id::text, aggregate_type, aggregate_id, event_type, payload, trace_context, created_at
                         FROM outbox_events
                         WHERE published_at IS NULL
                           AND (claimed_at IS NULL OR claimed_at < NOW() - make_interval(secs => $2))
                         ORDER BY id
                         LIMIT $1
                         FOR UPDATE SKIP LOCKED`

	var events []model.OutboxEvent
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit, lease.Seconds())
		if err != nil {
			return err
		}
		defer rows.Close()

		var ids []int64
		for rows.Next() {
			var (
				e       model.OutboxEvent
				eventID string
				carrier []byte
			)
			if err := rows.Scan(&e.ID, &eventID, &e.AggregateType, &e.AggregateID, &e.EventType, &e.Payload, &carrier, &e.CreatedAt); err != nil {
				return err
			}
			if e.EventID, err = uuid.Parse(eventID); err != nil {
				return fmt.Errorf("parse event id: %w", err)
			}
			if len(carrier) > 0 {
				if err := json.Unmarshal(carrier, &e.TraceContext); err != nil {
					return fmt.Errorf("decode trace context: %w", err)
				}
			}
			events = append(events, e)
			ids = append(ids, e.ID)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		rows.Close()

		if len(ids) == 0 {
			return nil
		}
		if _, err := tx.Exec(ctx, `UPDATE outbox_events SET claimed_at=NOW() WHERE id = ANY($1)`, ids); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *outboxRepository) MarkPublished(ctx context.Context, id int64) error {
	_, err := r.storage.pool.Exec(ctx, `UPDATE outbox_events SET published_at=NOW() WHERE id=$1`, id)
	return err
}
