package create_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	createBooking "github.com/m04kA/SMC-FitnessScheduling/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// Дата и время не проверяются здесь: ошибки по полям формирует use case
type CreateBookingRequest struct {
	ProviderID string  `json:"providerId" validate:"required,uuid"`
	SubjectID  string  `json:"subjectId" validate:"required,uuid"`
	Date       string  `json:"date"`              // "2025-10-15"
	Time       string  `json:"time"`              // "10:00"
	Address    string  `json:"address,omitempty"` // обязателен для "A Domicilio"
	Note       *string `json:"note,omitempty"`
}

// InvalidIDError идентификатор в запросе не разобрался как UUID
type InvalidIDError struct {
	Field string
	Err   error
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *InvalidIDError) Unwrap() error {
	return e.Err
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(requesterID uuid.UUID) (*createBooking.Request, error) {
	providerID, err := uuid.Parse(r.ProviderID)
	if err != nil {
		return nil, &InvalidIDError{Field: "providerId", Err: err}
	}
	subjectID, err := uuid.Parse(r.SubjectID)
	if err != nil {
		return nil, &InvalidIDError{Field: "subjectId", Err: err}
	}

	return &createBooking.Request{
		RequesterID: requesterID,
		ProviderID:  providerID,
		SubjectID:   subjectID,
		Date:        r.Date,
		Time:        r.Time,
		Address:     r.Address,
		Note:        r.Note,
	}, nil
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	RequesterID uuid.UUID `json:"requesterId"`
	ProviderID  uuid.UUID `json:"providerId"`
	SubjectID   uuid.UUID `json:"subjectId"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Status      string    `json:"status"`
	Note        *string   `json:"note,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		RequesterID: resp.RequesterID,
		ProviderID:  resp.ProviderID,
		SubjectID:   resp.SubjectID,
		ScheduledAt: resp.ScheduledAt,
		Date:        resp.Date,
		Time:        resp.Time.String(),
		Status:      string(resp.Status),
		Note:        resp.Note,
		CreatedAt:   resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
	}
}
