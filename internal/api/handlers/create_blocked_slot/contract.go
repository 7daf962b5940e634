package create_blocked_slot

import (
	"context"

	"github.com/m04kA/SMC-FitnessScheduling/internal/service/bookings/models"
)

type BookingService interface {
	CreateBlockedSlot(ctx context.Context, req *models.CreateBlockedSlotRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
