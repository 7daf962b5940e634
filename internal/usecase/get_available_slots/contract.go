package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
)

// AvailabilityProvider источник недельного расписания (с учётом расписания по умолчанию)
type AvailabilityProvider interface {
	GetWeeklyPattern(ctx context.Context, providerID uuid.UUID) (domain.WeeklyPattern, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// BlockRepository интерфейс репозитория исключений из расписания
type BlockRepository interface {
	ListByProvider(ctx context.Context, providerID uuid.UUID, date *time.Time) ([]*domain.BlockedInterval, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
