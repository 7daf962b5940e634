package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FitnessScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-FitnessScheduling/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-FitnessScheduling/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgMissingUserID      = "falta el identificador de usuario"
	msgSubjectNotFound    = "servicio o clase no encontrado"
	msgSlotNotAvailable   = "el horario seleccionado ya no está disponible"
	msgInvalidInput       = "datos de la reserva inválidos"
)

// fieldMessages сообщения для формы по (поле, причина)
var fieldMessages = map[string]map[string]string{
	createBooking.FieldDate: {
		createBooking.ReasonRequired:      "selecciona una fecha",
		createBooking.ReasonInvalidFormat: "formato de fecha inválido, se espera AAAA-MM-DD",
		createBooking.ReasonInPast:        "la fecha no puede estar en el pasado",
	},
	createBooking.FieldTime: {
		createBooking.ReasonRequired:      "selecciona un horario",
		createBooking.ReasonInvalidFormat: "formato de hora inválido, se espera HH:MM",
		createBooking.ReasonNotAvailable:  msgSlotNotAvailable,
	},
	createBooking.FieldAddress: {
		createBooking.ReasonRequired: "la dirección es obligatoria para servicios a domicilio",
		createBooking.ReasonTooLong:  "la dirección es demasiado larga",
	},
	createBooking.FieldNote: {
		createBooking.ReasonTooLong: "la nota es demasiado larga",
	},
	createBooking.FieldSubjectID: {
		createBooking.ReasonProviderMismatch: "el servicio no pertenece a este proveedor",
	},
}

func fieldMessage(field, reason string) string {
	if msg, ok := fieldMessages[field][reason]; ok {
		return msg
	}
	return msgInvalidInput
}

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		if field, ok := handlers.FirstInvalidField(err); ok {
			handlers.RespondFieldError(w, http.StatusBadRequest, msgInvalidRequestBody, field, createBooking.ReasonInvalidFormat)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid identifier: %v", err)
		var idErr *InvalidIDError
		if errors.As(err, &idErr) {
			handlers.RespondFieldError(w, http.StatusBadRequest, msgInvalidRequestBody, idErr.Field, createBooking.ReasonInvalidFormat)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		var vErr *createBooking.ValidationError
		switch {
		case errors.As(err, &vErr):
			status := http.StatusUnprocessableEntity
			if errors.Is(err, createBooking.ErrSlotNotAvailable) {
				status = http.StatusConflict
			}
			h.logger.Warn("POST /bookings - Validation failed: user_id=%s, provider_id=%s, field=%s, reason=%s",
				userID, req.ProviderID, vErr.Field, vErr.Reason)
			handlers.RespondFieldError(w, status, fieldMessage(vErr.Field, vErr.Reason), vErr.Field, vErr.Reason)

		case errors.Is(err, createBooking.ErrSubjectNotFound):
			h.logger.Warn("POST /bookings - Subject not found: subject_id=%s", req.SubjectID)
			handlers.RespondNotFound(w, msgSubjectNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, provider_id=%s, error=%v",
				userID, req.ProviderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s, provider_id=%s",
		result.ID, userID, result.ProviderID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
