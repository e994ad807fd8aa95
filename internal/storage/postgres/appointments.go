package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
)

type appointmentRepository struct {
	storage *Storage
}

func (r *appointmentRepository) ListBookedSlots(ctx context.Context, date string) ([]model.Slot, error) {
	const query = `SELECT DISTINCT slot FROM appointments WHERE appointment_date=$1 AND status='booked' ORDER BY slot`
	rows, err := r.storage.pool.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []model.Slot
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		slots = append(slots, model.Slot(s))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return slots, nil
}

// Create relies on uq_appointments_date_slot to reject a slot booked between
// availability check and insert.
func (r *appointmentRepository) Create(ctx context.Context, appt *model.Appointment, event model.OutboxEvent) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insert = `INSERT INTO appointments (id, appointment_date, slot, order_id, customer_id, status)
                        VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at`
		err := tx.QueryRow(ctx, insert,
			appt.ID.String(), appt.Date, string(appt.Slot), appt.OrderID, appt.CustomerID, string(appt.Status),
		).Scan(&appt.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return domainErrors.ErrSlotUnavailable
			}
			return fmt.Errorf("insert appointment: %w", err)
		}

		if appt.OrderID != nil {
			const link = `UPDATE orders SET appointment_id=$1, appointment_date=$2, appointment_slot=$3
                          WHERE id=$4 AND appointment_id IS NULL`
			tag, err := tx.Exec(ctx, link, appt.ID.String(), appt.Date, string(appt.Slot), *appt.OrderID)
			if err != nil {
				return fmt.Errorf("link appointment to order: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return domainErrors.ErrAlreadyExists
			}
		}

		return insertEvent(ctx, tx, event)
	})
}

func (r *appointmentRepository) ListByDate(ctx context.Context, date string) ([]model.Appointment, error) {
	const query = `SELECT id::text, appointment_date, slot, COALESCE(order_id, 0), customer_id, status, created_at
                   FROM appointments WHERE appointment_date=$1 ORDER BY slot, created_at`
	rows, err := r.storage.pool.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Appointment
	for rows.Next() {
		var (
			a       model.Appointment
			id      string
			slot    string
			status  string
			orderID int64
		)
		if err := rows.Scan(&id, &a.Date, &slot, &orderID, &a.CustomerID, &status, &a.CreatedAt); err != nil {
			return nil, err
		}
		if orderID != 0 {
			a.OrderID = &orderID
		}
		if a.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse appointment id: %w", err)
		}
		a.Slot = model.Slot(slot)
		a.Status = model.AppointmentStatus(status)
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
