package remove_block

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
	msgInvalidBlockID = "identificador de bloqueo inválido"
	msgMissingUserID  = "falta el identificador de usuario"
	msgForbidden      = "acceso denegado"
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

// Handle DELETE /api/v1/blocks/{blockId}
// Повторное удаление отвечает 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blockID, err := uuid.Parse(mux.Vars(r)["blockId"])
	if err != nil {
		h.logger.Warn("DELETE /blocks/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /blocks/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.RemoveBlock(r.Context(), userID, blockID); err != nil {
		if errors.Is(err, availability.ErrAccessDenied) {
			h.logger.Warn("DELETE /blocks/{id} - Access denied: block_id=%s, user_id=%s", blockID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("DELETE /blocks/{id} - Failed to remove block: block_id=%s, error=%v", blockID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /blocks/{id} - Block removed: block_id=%s, user_id=%s", blockID, userID)
	w.WriteHeader(http.StatusNoContent)
}
