package get_navigation

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/internal/service/navigation/models"
)

type NavigationService interface {
	GetNavigation(ctx context.Context, callerID uuid.UUID) (*models.NavigationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
