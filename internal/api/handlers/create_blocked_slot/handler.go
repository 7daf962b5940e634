package create_blocked_slot

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FitnessScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-FitnessScheduling/internal/api/middleware"
	"github.com/m04kA/SMC-FitnessScheduling/internal/service/bookings"
	"github.com/m04kA/SMC-FitnessScheduling/internal/service/bookings/models"
)

const (
	msgInvalidProviderID  = "identificador de proveedor inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgMissingUserID      = "falta el identificador de usuario"
	msgForbidden          = "acceso denegado"
	msgSlotNotAvailable   = "el horario ya está ocupado"
	msgInvalidSlot        = "fecha u hora inválida"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/providers/{providerId}/blocked-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID, err := uuid.Parse(mux.Vars(r)["providerId"])
	if err != nil {
		h.logger.Warn("POST /providers/{id}/blocked-slots - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /providers/{id}/blocked-slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBlockedSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /providers/{id}/blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.CreateBlockedSlot(r.Context(), &models.CreateBlockedSlotRequest{
		CallerID:   userID,
		ProviderID: providerID,
		Date:       req.Date,
		Time:       req.Time,
		Note:       req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("POST /providers/{id}/blocked-slots - Access denied: provider_id=%s, user_id=%s", providerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrSlotNotAvailable):
			h.logger.Warn("POST /providers/{id}/blocked-slots - Slot occupied: provider_id=%s, date=%s, time=%s",
				providerID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /providers/{id}/blocked-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		default:
			h.logger.Error("POST /providers/{id}/blocked-slots - Failed to block slot: provider_id=%s, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /providers/{id}/blocked-slots - Slot blocked: booking_id=%s, provider_id=%s", booking.ID, providerID)
	handlers.RespondJSON(w, http.StatusCreated, booking)
}
