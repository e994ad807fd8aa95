package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
	"github.com/polkiloo/atelier/internal/domain/repository"
)

const (
	firstSlotHour = 9
	lastSlotHour  = 18
)

// DailySlots returns the fixed fitting windows 09:00 through 18:00.
func DailySlots() []model.Slot {
	slots := make([]model.Slot, 0, lastSlotHour-firstSlotHour+1)
	for h := firstSlotHour; h <= lastSlotHour; h++ {
		slots = append(slots, model.Slot(fmt.Sprintf("%02d:00", h)))
	}
	return slots
}

// AvailabilityUseCase answers slot availability questions.
type AvailabilityUseCase struct {
	appointments repository.AppointmentRepository
}

// NewAvailabilityUseCase constructs AvailabilityUseCase.
func NewAvailabilityUseCase(appointments repository.AppointmentRepository) *AvailabilityUseCase {
	return &AvailabilityUseCase{appointments: appointments}
}

// BookedSlots returns the distinct slots already booked on date.
func (u *AvailabilityUseCase) BookedSlots(ctx context.Context, date string) (map[model.Slot]struct{}, error) {
	slots, err := u.appointments.ListBookedSlots(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list booked slots: %w", err)
	}
	booked := make(map[model.Slot]struct{}, len(slots))
	for _, s := range slots {
		booked[s] = struct{}{}
	}
	return booked, nil
}

// AvailableSlots returns daily slots not yet booked on date, in daily order.
func (u *AvailabilityUseCase) AvailableSlots(ctx context.Context, date string) ([]model.Slot, error) {
	booked, err := u.BookedSlots(ctx, date)
	if err != nil {
		return nil, err
	}
	out := make([]model.Slot, 0, lastSlotHour-firstSlotHour+1)
	for _, s := range DailySlots() {
		if _, taken := booked[s]; !taken {
			out = append(out, s)
		}
	}
	return out, nil
}

// QuerySlots is the public entry point: the date shape is checked before the store is touched.
func (u *AvailabilityUseCase) QuerySlots(ctx context.Context, date string) ([]model.Slot, error) {
	if !ValidateDate(date) {
		return nil, domainErrors.ErrInvalidDate
	}
	return u.AvailableSlots(ctx, date)
}

// ValidateSlotSelection checks a submitted date/slot pair against current bookings.
func (u *AvailabilityUseCase) ValidateSlotSelection(ctx context.Context, date string, slot model.Slot) error {
	if date == "" {
		return domainErrors.ErrDateRequired
	}
	if slot == "" {
		return domainErrors.ErrSlotRequired
	}
	available, err := u.AvailableSlots(ctx, date)
	if err != nil {
		return err
	}
	for _, s := range available {
		if s == slot {
			return nil
		}
	}
	return domainErrors.ErrSlotUnavailable
}
