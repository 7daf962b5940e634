package list_blocks

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FitnessScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-FitnessScheduling/internal/api/middleware"
	"github.com/m04kA/SMC-FitnessScheduling/internal/service/availability"
)

const (
	msgInvalidProviderID = "identificador de proveedor inválido"
	msgMissingUserID     = "falta el identificador de usuario"
	msgForbidden         = "acceso denegado"
	msgInvalidDate       = "formato de fecha inválido, se espera AAAA-MM-DD"
)

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

// Handle GET /api/v1/providers/{providerId}/blocks?date=YYYY-MM-DD (date опционален)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, err := uuid.Parse(mux.Vars(r)["providerId"])
	if err != nil {
		h.logger.Warn("GET /providers/{id}/blocks - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /providers/{id}/blocks - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	resp, err := h.service.ListBlocks(r.Context(), userID, providerID, r.URL.Query().Get("date"))
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("GET /providers/{id}/blocks - Access denied: provider_id=%s, user_id=%s", providerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/blocks - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /providers/{id}/blocks - Failed to list blocks: provider_id=%s, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/blocks - Blocks retrieved: provider_id=%s, count=%d", providerID, len(resp.Blocks))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
