package get_available_slots

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FitnessScheduling/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-FitnessScheduling/internal/usecase/get_available_slots"
)

const (
	msgInvalidProviderID = "identificador de proveedor inválido"
	msgMissingDate       = "la fecha es obligatoria"
	msgInvalidDate       = "formato de fecha inválido, se espera AAAA-MM-DD"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	dates   DateParser
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, dates DateParser, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		dates:   dates,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, err := uuid.Parse(mux.Vars(r)["providerId"])
	if err != nil {
		h.logger.Warn("GET /providers/{id}/available-slots - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /providers/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := h.dates.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{ProviderID: providerID, Date: date})
	if err != nil {
		h.logger.Error("GET /providers/{id}/available-slots - Failed to get slots: provider_id=%s, date=%s, error=%v",
			providerID, dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /providers/{id}/available-slots - Slots retrieved successfully: provider_id=%s, date=%s, slots_count=%d",
		providerID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, h.dates))
}
