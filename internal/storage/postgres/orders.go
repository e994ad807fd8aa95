package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const orderColumns = `id, customer_id, COALESCE(appointment_id::text, ''), COALESCE(appointment_date, ''), COALESCE(appointment_slot, ''), created_at`

// Create stores the order and its line items in one transaction. Items start
// at awaiting_intake.
func (r *orderRepository) Create(ctx context.Context, customerID int64, items []model.CheckoutItem) (*model.Order, error) {
	order := &model.Order{CustomerID: customerID}
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (customer_id) VALUES ($1) RETURNING id, created_at`
		if err := tx.QueryRow(ctx, insertOrder, customerID).Scan(&order.ID, &order.CreatedAt); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		const insertItem = `INSERT INTO line_items (order_id, product_name, quantity, status) VALUES ($1, $2, $3, $4) RETURNING id`
		for _, it := range items {
			li := model.LineItem{
				OrderID:     order.ID,
				ProductName: it.ProductName,
				Quantity:    it.Quantity,
				Status:      model.ItemStatusAwaitingIntake,
			}
			if err := tx.QueryRow(ctx, insertItem, order.ID, it.ProductName, it.Quantity, string(li.Status)).Scan(&li.ID); err != nil {
				return fmt.Errorf("insert line item: %w", err)
			}
			order.Items = append(order.Items, li)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	items, err := loadItems(ctx, r.storage.pool, []int64{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.ID]
	return order, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE customer_id=$1 ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		result []model.Order
		ids    []int64
	)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return result, nil
	}

	items, err := loadItems(ctx, r.storage.pool, ids)
	if err != nil {
		return nil, err
	}
	for i := range result {
		result[i].Items = items[result[i].ID]
	}
	return result, nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o                  model.Order
		apptID, date, slot string
	)
	if err := row.Scan(&o.ID, &o.CustomerID, &apptID, &date, &slot, &o.CreatedAt); err != nil {
		return nil, err
	}
	if apptID != "" {
		id, err := uuid.Parse(apptID)
		if err != nil {
			return nil, fmt.Errorf("parse appointment id: %w", err)
		}
		o.Appointment = &model.OrderAppointment{ID: id, Date: date, Slot: model.Slot(slot)}
	}
	return &o, nil
}

func loadItems(ctx context.Context, q querier, orderIDs []int64) (map[int64][]model.LineItem, error) {
	const query = `SELECT id, order_id, product_name, quantity, COALESCE(status, '') FROM line_items WHERE order_id = ANY($1) ORDER BY order_id, id`
	rows, err := q.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]model.LineItem, len(orderIDs))
	for rows.Next() {
		var (
			li     model.LineItem
			status string
		)
		if err := rows.Scan(&li.ID, &li.OrderID, &li.ProductName, &li.Quantity, &status); err != nil {
			return nil, err
		}
		li.Status = model.ItemStatus(status)
		out[li.OrderID] = append(out[li.OrderID], li)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
