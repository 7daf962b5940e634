package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/types"
)

// Request модель запроса на получение свободного времени
type Request struct {
	ProviderID uuid.UUID // ID провайдера (тренер или зал)
	Date       time.Time // Календарный день (в календаре сервиса)
}

// Response модель ответа со свободными слотами
type Response struct {
	ProviderID uuid.UUID
	Date       time.Time
	DayName    domain.DayName
	Slots      []types.TimeString // В порядке, заданном провайдером
}
