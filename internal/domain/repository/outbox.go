package repository

import (
	"context"
	"time"

	"github.com/polkiloo/atelier/internal/domain/model"
)

// OutboxRepository gives the relay access to pending events.
type OutboxRepository interface {
	// Claim locks up to limit unpublished events whose previous claim is older than lease.
	Claim(ctx context.Context, limit int, lease time.Duration) ([]model.OutboxEvent, error)
	MarkPublished(ctx context.Context, id int64) error
}
