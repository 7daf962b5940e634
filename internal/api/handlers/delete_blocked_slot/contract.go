package delete_blocked_slot

import (
	"context"

	"github.com/google/uuid"
)

type BookingService interface {
	DeleteBlockedSlot(ctx context.Context, callerID, bookingID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
