package notifications

import (
	"time"

	"github.com/google/uuid"
)

// EventType тип уведомления
type EventType string

const (
	// EventBookingRequested новая заявка, получатель - провайдер
	EventBookingRequested EventType = "booking.requested"
	// EventBookingConfirmed заявка подтверждена, получатель - клиент
	EventBookingConfirmed EventType = "booking.confirmed"
	// EventBookingCancelled заявка отменена, получатель - другая сторона
	EventBookingCancelled EventType = "booking.cancelled"
)

// Event уведомление о событии бронирования
// Доставкой (email, push) занимается отдельный потребитель стрима
type Event struct {
	ID          uuid.UUID
	Type        EventType
	BookingID   uuid.UUID
	RecipientID uuid.UUID
	ProviderID  uuid.UUID
	RequesterID uuid.UUID
	ScheduledAt time.Time
	Status      string
	Note        string
	OccurredAt  time.Time
}

func (e Event) values() map[string]interface{} {
	return map[string]interface{}{
		"id":           e.ID.String(),
		"type":         string(e.Type),
		"booking_id":   e.BookingID.String(),
		"recipient_id": e.RecipientID.String(),
		"provider_id":  e.ProviderID.String(),
		"requester_id": e.RequesterID.String(),
		"scheduled_at": e.ScheduledAt.UTC().Format(time.RFC3339),
		"status":       e.Status,
		"note":         e.Note,
		"occurred_at":  e.OccurredAt.UTC().Format(time.RFC3339),
	}
}
