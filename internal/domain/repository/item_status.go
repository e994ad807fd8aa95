package repository

import (
	"context"

	"github.com/polkiloo/atelier/internal/domain/model"
)

// ItemStatusRepository stores fulfillment status per line item.
type ItemStatusRepository interface {
	// Initialize sets status only when none is stored yet.
	Initialize(ctx context.Context, itemID int64, status model.ItemStatus) error
	// Set overwrites the status and records event. Returns false when the item does not exist.
	Set(ctx context.Context, itemID int64, status model.ItemStatus, event model.OutboxEvent) (bool, error)
	// Get returns the stored status, empty when absent, ErrNotFound for unknown items.
	Get(ctx context.Context, itemID int64) (model.ItemStatus, error)
}
