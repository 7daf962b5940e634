package set_availability

import (
	"context"

	"github.com/m04kA/SMC-FitnessScheduling/internal/service/availability/models"
)

type AvailabilityService interface {
	SetWeeklyPattern(ctx context.Context, req *models.SetAvailabilityRequest) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
