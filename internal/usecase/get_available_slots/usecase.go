package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/types"
)

// UseCase use case расчёта свободного времени провайдера на дату
type UseCase struct {
	availability AvailabilityProvider
	bookingRepo  BookingRepository
	blockRepo    BlockRepository
	calendar     *domain.Calendar
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availability AvailabilityProvider,
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	calendar *domain.Calendar,
	logger Logger,
) *UseCase {
	return &UseCase{
		availability: availability,
		bookingRepo:  bookingRepo,
		blockRepo:    blockRepo,
		calendar:     calendar,
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.ProviderID == uuid.Nil {
		return nil, fmt.Errorf("%w: providerID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := uc.calendar.DateOf(req.Date)
	uc.logger.Info("GetAvailableSlots: provider=%s, date=%s", req.ProviderID, uc.calendar.FormatDate(date))

	slots, err := uc.Resolve(ctx, req.ProviderID, date)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: provider=%s, date=%s, %d slots available",
		req.ProviderID, uc.calendar.FormatDate(date), len(slots))

	return &Response{
		ProviderID: req.ProviderID,
		Date:       date,
		DayName:    uc.calendar.DayName(date),
		Slots:      slots,
	}, nil
}

// Resolve возвращает свободные слоты провайдера на календарный день date
// Вызывается и из создания бронирования: внутри транзакции выборка бронирований блокирует строки дня
func (uc *UseCase) Resolve(ctx context.Context, providerID uuid.UUID, date time.Time) ([]types.TimeString, error) {
	// 1. День недели в календаре сервиса
	dayName := uc.calendar.DayName(date)

	// 2. Расписание на этот день
	pattern, err := uc.availability.GetWeeklyPattern(ctx, providerID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get weekly pattern for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: failed to get weekly pattern: %w", ErrInternal, err)
	}

	day, ok := pattern.Day(dayName)
	if !ok || len(day.TimeSlots) == 0 {
		uc.logger.Info("GetAvailableSlots: provider=%s has no availability on %s", providerID, dayName)
		return []types.TimeString{}, nil
	}

	// 3. Занимающие слот бронирования на этот день
	dayStart, dayEnd := uc.calendar.DayBounds(date)
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		ProviderID:    &providerID,
		From:          &dayStart,
		To:            &dayEnd,
		OnlyOccupying: true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
	}

	// 4. Блокировки на этот день
	blocks, err := uc.blockRepo.ListByProvider(ctx, providerID, &dayStart)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocks for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("%w: failed to get blocks: %w", ErrInternal, err)
	}

	// 5. Остаток в исходном порядке
	return resolveSlots(day, date, bookings, blocks, uc.calendar), nil
}
