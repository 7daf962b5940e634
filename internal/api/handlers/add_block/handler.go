package add_block

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FitnessScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-FitnessScheduling/internal/api/middleware"
	"github.com/m04kA/SMC-FitnessScheduling/internal/service/availability"
	"github.com/m04kA/SMC-FitnessScheduling/internal/service/availability/models"
)

const (
	msgInvalidProviderID  = "identificador de proveedor inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgMissingUserID      = "falta el identificador de usuario"
	msgForbidden          = "acceso denegado"
	msgInvalidBlock       = "fecha u hora del bloqueo inválida"
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

// Handle POST /api/v1/providers/{providerId}/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, err := uuid.Parse(mux.Vars(r)["providerId"])
	if err != nil {
		h.logger.Warn("POST /providers/{id}/blocks - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /providers/{id}/blocks - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AddBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /providers/{id}/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	block, err := h.service.AddBlock(r.Context(), &models.AddBlockRequest{
		CallerID:   userID,
		ProviderID: providerID,
		Date:       req.Date,
		Time:       req.Time,
		Reason:     req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("POST /providers/{id}/blocks - Access denied: provider_id=%s, user_id=%s", providerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /providers/{id}/blocks - Invalid block: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBlock)

		default:
			h.logger.Error("POST /providers/{id}/blocks - Failed to add block: provider_id=%s, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /providers/{id}/blocks - Block created: block_id=%s, provider_id=%s", block.ID, providerID)
	handlers.RespondJSON(w, http.StatusCreated, block)
}
