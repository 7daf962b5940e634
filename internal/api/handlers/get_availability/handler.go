package get_availability

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FitnessScheduling/internal/api/handlers"
)

const msgInvalidProviderID = "identificador de proveedor inválido"

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/availability
// Публичный: без настроенного расписания отдаётся расписание по умолчанию (configured=false)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, err := uuid.Parse(mux.Vars(r)["providerId"])
	if err != nil {
		h.logger.Warn("GET /providers/{id}/availability - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	resp, err := h.service.GetAvailability(r.Context(), providerID)
	if err != nil {
		h.logger.Error("GET /providers/{id}/availability - Failed to get availability: provider_id=%s, error=%v", providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /providers/{id}/availability - Availability retrieved: provider_id=%s, configured=%t, days=%d",
		providerID, resp.Configured, len(resp.Days))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
