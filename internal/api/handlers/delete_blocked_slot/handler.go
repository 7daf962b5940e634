package delete_blocked_slot

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FitnessScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-FitnessScheduling/internal/api/middleware"
	"github.com/m04kA/SMC-FitnessScheduling/internal/service/bookings"
)

const (
	msgInvalidBookingID = "identificador de reserva inválido"
	msgMissingUserID    = "falta el identificador de usuario"
	msgNotFound         = "reserva no encontrada"
	msgForbidden        = "acceso denegado"
	msgNotBlocked       = "solo se pueden eliminar horarios bloqueados"
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

// Handle DELETE /api/v1/bookings/{bookingId}
// Удаляются только служебные записи blocked; обычные бронирования отменяются сменой статуса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.DeleteBlockedSlot(r.Context(), userID, bookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("DELETE /bookings/{id} - Access denied: booking_id=%s, user_id=%s", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrNotBlocked):
			h.logger.Warn("DELETE /bookings/{id} - Not a blocked slot: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgNotBlocked)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to delete: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Blocked slot deleted: booking_id=%s, user_id=%s", bookingID, userID)
	w.WriteHeader(http.StatusNoContent)
}
