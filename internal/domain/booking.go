package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPendingConfirmation BookingStatus = "pending_confirmation"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusCancelled           BookingStatus = "cancelled"
	StatusCompleted           BookingStatus = "completed"
	// StatusBlocked marks a provider's own unavailability, never requester-facing
	StatusBlocked BookingStatus = "blocked"
)

// transitions lists allowed status changes; statuses absent here are terminal
var transitions = map[BookingStatus][]BookingStatus{
	StatusPendingConfirmation: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:           {StatusCompleted, StatusCancelled},
}

// ParseBookingStatus validates a status string
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch st := BookingStatus(s); st {
	case StatusPendingConfirmation, StatusConfirmed, StatusCancelled, StatusCompleted, StatusBlocked:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// IsTerminal returns true if no transition leaves the status
func (s BookingStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// CanTransitionTo returns true if the lifecycle allows s -> next
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsOccupying returns true if a booking in this status consumes its slot
func (s BookingStatus) IsOccupying() bool {
	for _, st := range OccupyingStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Booking represents a requester's reservation of a provider slot
type Booking struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	ProviderID  uuid.UUID
	SubjectID   *uuid.UUID // nil for provider "blocked" markers
	ScheduledAt time.Time
	Status      BookingStatus
	Note        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOccupying returns true if the booking consumes its slot
func (b *Booking) IsOccupying() bool {
	return b.Status.IsOccupying()
}

// IsBlocked returns true if the booking is a provider unavailability marker
func (b *Booking) IsBlocked() bool {
	return b.Status == StatusBlocked
}

// Transition validates and applies a status change
func (b *Booking) Transition(next BookingStatus) error {
	if !b.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, next)
	}
	b.Status = next
	return nil
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	ProviderID    *uuid.UUID     // Фильтр по провайдеру (опционально)
	RequesterID   *uuid.UUID     // Фильтр по клиенту (опционально)
	Status        *BookingStatus // Фильтр по статусу (опционально)
	From          *time.Time     // Начало периода включительно (опционально)
	To            *time.Time     // Конец периода, не включая (опционально)
	OnlyOccupying bool           // Только бронирования, занимающие слот
	Limit         uint64         // 0 - без ограничения
	Offset        uint64
}

// IsSingleDay returns true if the filter is bounded to one provider's day window
func (f BookingsFilter) IsSingleDay() bool {
	return f.ProviderID != nil && f.From != nil && f.To != nil && f.To.Sub(*f.From) <= 24*time.Hour
}
