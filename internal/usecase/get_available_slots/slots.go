package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/types"
)

// resolveSlots вычитает из дня расписания занятые и заблокированные слоты
// Порядок слотов сохраняется как в расписании, повторная сортировка не выполняется
// Слот, занятый одновременно бронированием и блокировкой, исключается один раз
func resolveSlots(
	day domain.AvailabilityDay,
	date time.Time,
	bookings []*domain.Booking,
	blocks []*domain.BlockedInterval,
	cal *domain.Calendar,
) []types.TimeString {
	result := make([]types.TimeString, 0, len(day.TimeSlots))

	// Блокировка на весь день - свободных слотов нет
	for _, block := range blocks {
		if block.IsWholeDay() && cal.DateOf(block.Date).Equal(cal.DateOf(date)) {
			return result
		}
	}

	taken := occupiedTimes(date, bookings, cal)

	for _, slot := range day.TimeSlots {
		if _, busy := taken[slot]; busy {
			continue
		}
		if isBlocked(slot, date, blocks, cal) {
			continue
		}
		result = append(result, slot)
	}

	return result
}

// occupiedTimes возвращает время суток, занятое бронированиями на указанный день
func occupiedTimes(date time.Time, bookings []*domain.Booking, cal *domain.Calendar) map[types.TimeString]struct{} {
	day := cal.DateOf(date)
	taken := make(map[types.TimeString]struct{}, len(bookings))

	for _, booking := range bookings {
		if !booking.IsOccupying() {
			continue
		}
		if !cal.DateOf(booking.ScheduledAt).Equal(day) {
			continue
		}
		taken[cal.TimeOf(booking.ScheduledAt)] = struct{}{}
	}

	return taken
}

func isBlocked(slot types.TimeString, date time.Time, blocks []*domain.BlockedInterval, cal *domain.Calendar) bool {
	for _, block := range blocks {
		if block.Covers(cal, date, slot) {
			return true
		}
	}
	return false
}
