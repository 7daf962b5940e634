package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation оборачивается каждой ошибкой конкретного поля (см. ValidationError)
	ErrValidation = errors.New("create_booking: validation failed")

	// ErrSlotNotAvailable возвращается, когда выбранное время уже не свободно
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrSubjectNotFound возвращается, когда услуга или занятие не найдены
	ErrSubjectNotFound = errors.New("create_booking: subject not found")

	// ErrInvalidInput возвращается при некорректных данных, не связанных с полем формы
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// Причины ошибок полей
const (
	ReasonRequired         = "required"
	ReasonInvalidFormat    = "invalid_format"
	ReasonInPast           = "in_past"
	ReasonNotAvailable     = "not_available"
	ReasonTooLong          = "too_long"
	ReasonProviderMismatch = "provider_mismatch"
)

// Поля формы бронирования
const (
	FieldDate      = "date"
	FieldTime      = "time"
	FieldAddress   = "address"
	FieldNote      = "note"
	FieldSubjectID = "subjectId"
)

// ValidationError ошибка конкретного поля формы
// errors.Is(err, ErrValidation) всегда true; Cause уточняет причину (например, ErrSlotNotAvailable)
type ValidationError struct {
	Field  string
	Reason string
	Cause  error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: %s %s: %v", ErrValidation, e.Field, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%v: %s %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrValidation, e.Cause}
	}
	return []error{ErrValidation}
}

func fieldError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
