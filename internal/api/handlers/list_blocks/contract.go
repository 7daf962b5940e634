package list_blocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/internal/service/availability/models"
)

type AvailabilityService interface {
	ListBlocks(ctx context.Context, callerID, providerID uuid.UUID, date string) (*models.BlockListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
