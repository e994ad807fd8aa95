package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
	testhelpers "github.com/polkiloo/atelier/internal/test"
)

func bookedRepo(date string, slots ...model.Slot) *testhelpers.AppointmentRepositoryStub {
	repo := &testhelpers.AppointmentRepositoryStub{}
	for _, s := range slots {
		repo.Appointments = append(repo.Appointments, model.Appointment{Date: date, Slot: s, Status: model.AppointmentStatusBooked})
	}
	return repo
}

func TestDailySlots(t *testing.T) {
	slots := DailySlots()
	require.Len(t, slots, 10)
	assert.Equal(t, model.Slot("09:00"), slots[0])
	assert.Equal(t, model.Slot("18:00"), slots[9])
	for i := 1; i < len(slots); i++ {
		assert.Less(t, string(slots[i-1]), string(slots[i]))
	}
}

func TestAvailableSlotsSubtractsBooked(t *testing.T) {
	tests := []struct {
		name   string
		booked []model.Slot
		want   []model.Slot
	}{
		{
			name:   "morning taken",
			booked: []model.Slot{"09:00", "10:00"},
			want:   []model.Slot{"11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00"},
		},
		{
			name:   "scattered with duplicate",
			booked: []model.Slot{"10:00", "14:00", "10:00"},
			want:   []model.Slot{"09:00", "11:00", "12:00", "13:00", "15:00", "16:00", "17:00", "18:00"},
		},
		{
			name: "nothing booked",
			want: DailySlots(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := bookedRepo("2024-03-15", tt.booked...)
			repo.Appointments = append(repo.Appointments, model.Appointment{Date: "2024-03-16", Slot: "11:00", Status: model.AppointmentStatusBooked})

			slots, err := NewAvailabilityUseCase(repo).AvailableSlots(context.Background(), "2024-03-15")
			require.NoError(t, err)
			assert.Equal(t, tt.want, slots)
		})
	}
}

func TestBookedSlotsScopedToDate(t *testing.T) {
	repo := bookedRepo("2024-03-15", "10:00", "14:00")
	repo.Appointments = append(repo.Appointments, model.Appointment{Date: "2024-03-16", Slot: "11:00", Status: model.AppointmentStatusBooked})

	booked, err := NewAvailabilityUseCase(repo).BookedSlots(context.Background(), "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, map[model.Slot]struct{}{"10:00": {}, "14:00": {}}, booked)
}

func TestAvailableSlotsFullyBooked(t *testing.T) {
	uc := NewAvailabilityUseCase(bookedRepo("2024-03-15", DailySlots()...))
	slots, err := uc.AvailableSlots(context.Background(), "2024-03-15")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlotsIgnoresNonBookedRecords(t *testing.T) {
	repo := &testhelpers.AppointmentRepositoryStub{Appointments: []model.Appointment{
		{Date: "2024-03-15", Slot: "09:00", Status: model.AppointmentStatusCancelled},
	}}
	slots, err := NewAvailabilityUseCase(repo).AvailableSlots(context.Background(), "2024-03-15")
	require.NoError(t, err)
	assert.Len(t, slots, 10)
}

func TestQuerySlotsRejectsMalformedDateWithoutStoreCall(t *testing.T) {
	repo := bookedRepo("2024-03-15")
	_, err := NewAvailabilityUseCase(repo).QuerySlots(context.Background(), "15-03-2024")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidDate)
	assert.Zero(t, repo.ListCalls)
}

func TestAvailableSlotsStoreError(t *testing.T) {
	boom := errors.New("boom")
	repo := &testhelpers.AppointmentRepositoryStub{ListBookedFn: func(context.Context, string) ([]model.Slot, error) {
		return nil, boom
	}}
	_, err := NewAvailabilityUseCase(repo).AvailableSlots(context.Background(), "2024-03-15")
	assert.ErrorIs(t, err, boom)
}

func TestValidateSlotSelection(t *testing.T) {
	uc := NewAvailabilityUseCase(bookedRepo("2024-03-15", "10:00"))
	ctx := context.Background()

	assert.ErrorIs(t, uc.ValidateSlotSelection(ctx, "", "10:00"), domainErrors.ErrDateRequired)
	assert.ErrorIs(t, uc.ValidateSlotSelection(ctx, "2024-03-15", ""), domainErrors.ErrSlotRequired)
	assert.ErrorIs(t, uc.ValidateSlotSelection(ctx, "2024-03-15", "10:00"), domainErrors.ErrSlotUnavailable)
	assert.ErrorIs(t, uc.ValidateSlotSelection(ctx, "2024-03-15", "08:00"), domainErrors.ErrSlotUnavailable)
	assert.NoError(t, uc.ValidateSlotSelection(ctx, "2024-03-15", "11:00"))
}
