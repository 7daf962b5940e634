package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
	"github.com/m04kA/SMC-FitnessScheduling/internal/integrations/notifications"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/types"
)

// SlotResolver расчёт свободного времени провайдера на день
type SlotResolver interface {
	Resolve(ctx context.Context, providerID uuid.UUID, date time.Time) ([]types.TimeString, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// SubjectRepository интерфейс репозитория услуг и занятий
type SubjectRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Subject, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// NotificationPublisher публикация уведомлений
type NotificationPublisher interface {
	Publish(ctx context.Context, event notifications.Event) error
}

// MetricsRecorder учёт созданных бронирований
type MetricsRecorder interface {
	BookingCreated(status string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
