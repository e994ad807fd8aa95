package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
)

type itemStatusRepository struct {
	storage *Storage
}

func (r *itemStatusRepository) Initialize(ctx context.Context, itemID int64, status model.ItemStatus) error {
	const query = `UPDATE line_items SET status=$2, updated_at=NOW() WHERE id=$1 AND status IS NULL`
	tag, err := r.storage.pool.Exec(ctx, query, itemID, string(status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	// Either the item already has a status or it does not exist.
	_, err = r.Get(ctx, itemID)
	return err
}

func (r *itemStatusRepository) Set(ctx context.Context, itemID int64, status model.ItemStatus, event model.OutboxEvent) (bool, error) {
	var updated bool
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `UPDATE line_items SET status=$2, updated_at=NOW() WHERE id=$1`
		tag, err := tx.Exec(ctx, query, itemID, string(status))
		if err != nil {
			return fmt.Errorf("update line item status: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		updated = true
		return insertEvent(ctx, tx, event)
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

func (r *itemStatusRepository) Get(ctx context.Context, itemID int64) (model.ItemStatus, error) {
	const query = `SELECT COALESCE(status, '') FROM line_items WHERE id=$1`
	var status string
	if err := r.storage.pool.QueryRow(ctx, query, itemID).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domainErrors.ErrNotFound
		}
		return "", err
	}
	return model.ItemStatus(status), nil
}
