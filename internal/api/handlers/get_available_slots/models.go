package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-FitnessScheduling/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ProviderID string   `json:"providerId"`
	Date       string   `json:"date"`
	DayName    string   `json:"dayName"`
	Slots      []string `json:"slots"` // ["09:00", "10:00"] в порядке расписания
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response, dates DateParser) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		ProviderID: resp.ProviderID.String(),
		Date:       dates.FormatDate(resp.Date),
		DayName:    string(resp.DayName),
		Slots:      slots,
	}
}
