package availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
)

// AvailabilityRepository интерфейс репозитория недельного расписания
type AvailabilityRepository interface {
	GetByProvider(ctx context.Context, providerID uuid.UUID) (domain.WeeklyPattern, error)
	Replace(ctx context.Context, providerID uuid.UUID, pattern domain.WeeklyPattern) error
}

// BlockRepository интерфейс репозитория исключений из расписания
type BlockRepository interface {
	Create(ctx context.Context, block *domain.BlockedInterval) (*domain.BlockedInterval, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BlockedInterval, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID, date *time.Time) ([]*domain.BlockedInterval, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PatternCache кеш недельного расписания
type PatternCache interface {
	Get(ctx context.Context, providerID uuid.UUID) (domain.WeeklyPattern, bool, bool, error)
	Set(ctx context.Context, providerID uuid.UUID, pattern domain.WeeklyPattern, configured bool) error
	Invalidate(ctx context.Context, providerID uuid.UUID) error
}

// AccountDirectory справочник аккаунтов (проверка прав на провайдера)
type AccountDirectory interface {
	GetAccount(ctx context.Context, accountID uuid.UUID) (*domain.Account, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
