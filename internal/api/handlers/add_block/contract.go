package add_block

import (
	"context"

	"github.com/m04kA/SMC-FitnessScheduling/internal/service/availability/models"
)

type AvailabilityService interface {
	AddBlock(ctx context.Context, req *models.AddBlockRequest) (*models.BlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
