package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/logger"
)

type fakeAvailability struct {
	pattern domain.WeeklyPattern
	err     error
}

func (f *fakeAvailability) GetWeeklyPattern(_ context.Context, _ uuid.UUID) (domain.WeeklyPattern, error) {
	return f.pattern, f.err
}

type fakeBookings struct {
	bookings   []*domain.Booking
	err        error
	lastFilter domain.BookingsFilter
}

func (f *fakeBookings) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.bookings, f.err
}

type fakeBlocks struct {
	blocks []*domain.BlockedInterval
	err    error
}

func (f *fakeBlocks) ListByProvider(_ context.Context, _ uuid.UUID, _ *time.Time) ([]*domain.BlockedInterval, error) {
	return f.blocks, f.err
}

func newUseCase(av *fakeAvailability, bk *fakeBookings, bl *fakeBlocks) *UseCase {
	return NewUseCase(av, bk, bl, cal, logger.NewNop())
}

func TestExecute_BookedMondaySlotIsConsumed(t *testing.T) {
	provider := uuid.New()
	nextMonday := mustDate("2024-06-10")

	av := &fakeAvailability{pattern: domain.WeeklyPattern{
		{DayName: domain.Lunes, TimeSlots: slots("09:00", "10:00")},
	}}
	bk := &fakeBookings{bookings: []*domain.Booking{bookingAt(nextMonday, "09:00", domain.StatusPendingConfirmation)}}

	resp, err := newUseCase(av, bk, &fakeBlocks{}).Execute(context.Background(), &Request{
		ProviderID: provider,
		Date:       nextMonday,
	})

	require.NoError(t, err)
	assert.Equal(t, slots("10:00"), resp.Slots)
	assert.Equal(t, domain.Lunes, resp.DayName)

	// выборка ограничена днём провайдера
	require.NotNil(t, bk.lastFilter.ProviderID)
	assert.Equal(t, provider, *bk.lastFilter.ProviderID)
	assert.True(t, bk.lastFilter.OnlyOccupying)
	assert.Equal(t, 24*time.Hour, bk.lastFilter.To.Sub(*bk.lastFilter.From))
}

func TestExecute_DayWithoutAvailabilityIsEmptyNotError(t *testing.T) {
	av := &fakeAvailability{pattern: domain.WeeklyPattern{
		{DayName: domain.Lunes, TimeSlots: slots("09:00")},
	}}

	resp, err := newUseCase(av, &fakeBookings{}, &fakeBlocks{}).Execute(context.Background(), &Request{
		ProviderID: uuid.New(),
		Date:       mustDate("2024-06-04"), // вторник
	})

	require.NoError(t, err)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_UsesCalendarDayNotHostZone(t *testing.T) {
	av := &fakeAvailability{pattern: domain.WeeklyPattern{
		{DayName: domain.Lunes, TimeSlots: slots("20:00")},
	}}

	// 2024-06-04 01:00 UTC - ещё понедельник в Боготе
	resp, err := newUseCase(av, &fakeBookings{}, &fakeBlocks{}).Execute(context.Background(), &Request{
		ProviderID: uuid.New(),
		Date:       time.Date(2024, 6, 4, 1, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Lunes, resp.DayName)
	assert.Equal(t, slots("20:00"), resp.Slots)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(&fakeAvailability{}, &fakeBookings{}, &fakeBlocks{})

	_, err := uc.Execute(context.Background(), &Request{Date: mustDate("2024-06-03")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ProviderID: uuid.New()})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_CollaboratorFailures(t *testing.T) {
	boom := errors.New("boom")
	pattern := domain.WeeklyPattern{{DayName: domain.Lunes, TimeSlots: slots("09:00")}}
	req := &Request{ProviderID: uuid.New(), Date: mustDate("2024-06-03")}

	_, err := newUseCase(&fakeAvailability{err: boom}, &fakeBookings{}, &fakeBlocks{}).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInternal)

	_, err = newUseCase(&fakeAvailability{pattern: pattern}, &fakeBookings{err: boom}, &fakeBlocks{}).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInternal)

	_, err = newUseCase(&fakeAvailability{pattern: pattern}, &fakeBookings{}, &fakeBlocks{err: boom}).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInternal)
}
