package set_availability

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/internal/service/availability/models"
)

// SetAvailabilityRequest HTTP request model - полная замена недельного расписания
// Пустой список дней означает "закрыто всю неделю"
type SetAvailabilityRequest struct {
	Days []DayRequest `json:"days" validate:"max=7,dive"`
}

// DayRequest день расписания
type DayRequest struct {
	DayName   string   `json:"dayName" validate:"required"`
	TimeSlots []string `json:"timeSlots" validate:"max=96"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос сервиса
func (r *SetAvailabilityRequest) ToServiceRequest(callerID, providerID uuid.UUID) *models.SetAvailabilityRequest {
	days := make([]models.DayDTO, len(r.Days))
	for i, d := range r.Days {
		days[i] = models.DayDTO{DayName: d.DayName, TimeSlots: d.TimeSlots}
	}
	return &models.SetAvailabilityRequest{
		CallerID:   callerID,
		ProviderID: providerID,
		Days:       days,
	}
}
