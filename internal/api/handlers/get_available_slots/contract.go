package get_available_slots

import (
	"context"
	"time"

	getAvailableSlots "github.com/m04kA/SMC-FitnessScheduling/internal/usecase/get_available_slots"
)

type GetAvailableSlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// DateParser разбирает дату в календаре сервиса
type DateParser interface {
	ParseDate(s string) (time.Time, error)
	FormatDate(instant time.Time) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
