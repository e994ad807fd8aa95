package usecase

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
)

const tracerName = "github.com/polkiloo/atelier/internal/usecase"

// CheckoutUseCase runs the checkout pipeline: validate, place the order,
// initialize item statuses, then book the appointment.
type CheckoutUseCase struct {
	orders       *OrderUseCase
	availability *AvailabilityUseCase
	appointments *AppointmentUseCase
	fulfillment  *FulfillmentUseCase
	logger       *slog.Logger
	tracer       trace.Tracer
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(
	orders *OrderUseCase,
	availability *AvailabilityUseCase,
	appointments *AppointmentUseCase,
	fulfillment *FulfillmentUseCase,
	logger *slog.Logger,
) *CheckoutUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &CheckoutUseCase{
		orders:       orders,
		availability: availability,
		appointments: appointments,
		fulfillment:  fulfillment,
		logger:       logger,
		tracer:       otel.Tracer(tracerName),
	}
}

// Checkout places the order. Validation failures abort before anything is
// written. Once the order is committed it is returned even if the appointment
// could not be booked; the outcome says why.
func (u *CheckoutUseCase) Checkout(ctx context.Context, customerID int64, req model.CheckoutRequest) (*model.CheckoutResult, error) {
	ctx, span := u.tracer.Start(ctx, "checkout", trace.WithAttributes(
		attribute.Int64("customer.id", customerID),
		attribute.String("appointment.date", req.AppointmentDate),
		attribute.String("appointment.slot", string(req.AppointmentSlot)),
	))
	defer span.End()

	if err := u.stage(ctx, "checkout.validate_items", func(context.Context) error {
		return ValidateCheckoutItems(req.Items)
	}); err != nil {
		return nil, fail(span, err)
	}

	if err := u.stage(ctx, "checkout.validate_slot", func(ctx context.Context) error {
		if req.AppointmentDate != "" && !ValidateDate(req.AppointmentDate) {
			return domainErrors.ErrInvalidDate
		}
		return u.availability.ValidateSlotSelection(ctx, req.AppointmentDate, req.AppointmentSlot)
	}); err != nil {
		return nil, fail(span, err)
	}

	var order *model.Order
	if err := u.stage(ctx, "checkout.place_order", func(ctx context.Context) error {
		var err error
		order, err = u.orders.Place(ctx, customerID, req.Items)
		return err
	}); err != nil {
		return nil, fail(span, err)
	}
	span.SetAttributes(attribute.Int64("order.id", order.ID))

	if err := u.stage(ctx, "checkout.initialize_statuses", func(ctx context.Context) error {
		for i, item := range order.Items {
			if item.Status != "" {
				continue
			}
			if err := u.fulfillment.InitializeStatus(ctx, item.ID); err != nil {
				return err
			}
			order.Items[i].Status = model.ItemStatusAwaitingIntake
		}
		return nil
	}); err != nil {
		u.logger.ErrorContext(ctx, "initialize item statuses failed",
			slog.Int64("order_id", order.ID),
			slog.Any("error", err),
		)
	}

	result := &model.CheckoutResult{Order: order}
	var appt *model.Appointment
	err := u.stage(ctx, "checkout.create_appointment", func(ctx context.Context) error {
		var err error
		appt, err = u.appointments.Create(ctx, order.ID, customerID, req.AppointmentDate, req.AppointmentSlot)
		return err
	})
	if err != nil {
		u.logger.ErrorContext(ctx, "appointment linkage failed after order placement",
			slog.Int64("order_id", order.ID),
			slog.String("date", req.AppointmentDate),
			slog.String("slot", string(req.AppointmentSlot)),
			slog.Any("error", err),
		)
		result.Appointment = model.AppointmentOutcome{Reason: outcomeReason(err)}
		return result, nil
	}

	order.Appointment = &model.OrderAppointment{ID: appt.ID, Date: appt.Date, Slot: appt.Slot}
	result.Appointment = model.AppointmentOutcome{Booked: true, Appointment: appt}
	return result, nil
}

func (u *CheckoutUseCase) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := u.tracer.Start(ctx, name)
	defer span.End()
	if err := fn(ctx); err != nil {
		return fail(span, err)
	}
	return nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func outcomeReason(err error) string {
	if errors.Is(err, domainErrors.ErrSlotUnavailable) {
		return domainErrors.ErrSlotUnavailable.Error()
	}
	return "appointment could not be booked"
}
