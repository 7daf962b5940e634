package get_availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/internal/service/availability/models"
)

type AvailabilityService interface {
	GetAvailability(ctx context.Context, providerID uuid.UUID) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
