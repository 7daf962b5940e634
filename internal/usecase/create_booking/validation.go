package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/types"
)

// parsedRequest провалидированные дата и время
type parsedRequest struct {
	date time.Time
	time types.TimeString
}

// validateRequest проверяет поля формы в порядке: дата, время, дата в прошлом, комментарий
// Дата "сегодня" с уже прошедшим временем не отклоняется: проверяется только день
func validateRequest(req *Request, cal *domain.Calendar, now time.Time) (*parsedRequest, error) {
	if req.RequesterID == uuid.Nil {
		return nil, fmt.Errorf("%w: requesterID is required", ErrInvalidInput)
	}
	if req.ProviderID == uuid.Nil {
		return nil, fmt.Errorf("%w: providerID is required", ErrInvalidInput)
	}
	if req.SubjectID == uuid.Nil {
		return nil, fieldError(FieldSubjectID, ReasonRequired)
	}

	if strings.TrimSpace(req.Date) == "" {
		return nil, fieldError(FieldDate, ReasonRequired)
	}
	date, err := cal.ParseDate(strings.TrimSpace(req.Date))
	if err != nil {
		return nil, &ValidationError{Field: FieldDate, Reason: ReasonInvalidFormat, Cause: err}
	}

	if strings.TrimSpace(req.Time) == "" {
		return nil, fieldError(FieldTime, ReasonRequired)
	}
	slot, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return nil, &ValidationError{Field: FieldTime, Reason: ReasonInvalidFormat, Cause: err}
	}

	if cal.IsBeforeToday(date, now) {
		return nil, fieldError(FieldDate, ReasonInPast)
	}

	if len(strings.TrimSpace(req.Address)) > domain.MaxAddressLength {
		return nil, fieldError(FieldAddress, ReasonTooLong)
	}
	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return nil, fieldError(FieldNote, ReasonTooLong)
	}

	return &parsedRequest{date: date, time: slot}, nil
}

// validateSubject проверяет принадлежность услуги провайдеру и наличие адреса для выезда
func validateSubject(subject *domain.Subject, req *Request) error {
	if subject.ProviderID != req.ProviderID {
		return fieldError(FieldSubjectID, ReasonProviderMismatch)
	}
	if subject.LocationType.RequiresAddress() && strings.TrimSpace(req.Address) == "" {
		return fieldError(FieldAddress, ReasonRequired)
	}
	return nil
}

// buildNote собирает комментарий бронирования: адрес (если указан) и текст клиента
func buildNote(address string, note *string) *string {
	parts := make([]string, 0, 2)
	if a := strings.TrimSpace(address); a != "" {
		parts = append(parts, "Dirección: "+a)
	}
	if note != nil {
		if n := strings.TrimSpace(*note); n != "" {
			parts = append(parts, n)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	result := strings.Join(parts, "\n")
	return &result
}
