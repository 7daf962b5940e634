package navigation

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
)

// AccountDirectory справочник аккаунтов
type AccountDirectory interface {
	GetAccount(ctx context.Context, accountID uuid.UUID) (*domain.Account, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
