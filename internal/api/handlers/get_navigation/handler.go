package get_navigation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FitnessScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-FitnessScheduling/internal/api/middleware"
	"github.com/m04kA/SMC-FitnessScheduling/internal/service/navigation"
)

const (
	msgMissingUserID   = "falta el identificador de usuario"
	msgAccountNotFound = "cuenta no encontrada"
	msgDirectoryDown   = "el servicio de cuentas no está disponible"
)

type Handler struct {
	service NavigationService
	logger  Logger
}

func NewHandler(service NavigationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/me/navigation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /me/navigation - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	resp, err := h.service.GetNavigation(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, navigation.ErrAccountNotFound):
			h.logger.Warn("GET /me/navigation - Account not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgAccountNotFound)

		case errors.Is(err, navigation.ErrAccountDirectory):
			h.logger.Error("GET /me/navigation - Account directory failed: user_id=%s, error=%v", userID, err)
			handlers.RespondBadGateway(w, msgDirectoryDown)

		default:
			h.logger.Error("GET /me/navigation - Failed to resolve navigation: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /me/navigation - Navigation resolved: user_id=%s, features=%d", userID, len(resp.Features))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
