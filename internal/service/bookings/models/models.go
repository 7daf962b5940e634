package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
)

// DefaultListLimit размер страницы списка по умолчанию
const DefaultListLimit = 50

// MaxListLimit максимальный размер страницы
const MaxListLimit = 200

// Request модели

// ListBookingsRequest запрос списка бронирований
// Без ProviderID возвращаются бронирования самого вызывающего
type ListBookingsRequest struct {
	CallerID    uuid.UUID
	ProviderID  *uuid.UUID
	RequesterID *uuid.UUID
	Status      *string
	From        *string // "2025-10-15", включительно
	To          *string // "2025-10-20", включительно
	Limit       uint64
	Offset      uint64
}

// ToDomainFilter конвертирует запрос в доменный фильтр. Даты трактуются в календаре сервиса
func (r *ListBookingsRequest) ToDomainFilter(cal *domain.Calendar) (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		ProviderID:  r.ProviderID,
		RequesterID: r.RequesterID,
		Limit:       r.Limit,
		Offset:      r.Offset,
	}

	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}

	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.From != nil {
		from, err := cal.ParseDate(*r.From)
		if err != nil {
			return filter, fmt.Errorf("invalid from date %q: %w", *r.From, err)
		}
		filter.From = &from
	}

	if r.To != nil {
		to, err := cal.ParseDate(*r.To)
		if err != nil {
			return filter, fmt.Errorf("invalid to date %q: %w", *r.To, err)
		}
		_, end := cal.DayBounds(to)
		filter.To = &end
	}

	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return filter, fmt.Errorf("from date is after to date")
	}

	return filter, nil
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	CallerID  uuid.UUID `json:"-"`
	BookingID uuid.UUID `json:"-"`
	Status    string    `json:"status"`
}

// CreateBlockedSlotRequest запрос на блокировку слота провайдером
type CreateBlockedSlotRequest struct {
	CallerID   uuid.UUID `json:"-"`
	ProviderID uuid.UUID `json:"-"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Note       *string   `json:"note,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          uuid.UUID  `json:"id"`
	RequesterID uuid.UUID  `json:"requesterId"`
	ProviderID  uuid.UUID  `json:"providerId"`
	SubjectID   *uuid.UUID `json:"subjectId,omitempty"`
	ScheduledAt time.Time  `json:"scheduledAt"`
	Date        string     `json:"date"` // "2025-10-15" в календаре сервиса
	Time        string     `json:"time"` // "10:00"
	Status      string     `json:"status"`
	Note        *string    `json:"note,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking, cal *domain.Calendar) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		RequesterID: b.RequesterID,
		ProviderID:  b.ProviderID,
		SubjectID:   b.SubjectID,
		ScheduledAt: b.ScheduledAt,
		Date:        cal.FormatDate(b.ScheduledAt),
		Time:        cal.TimeOf(b.ScheduledAt).String(),
		Status:      string(b.Status),
		Note:        b.Note,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, cal *domain.Calendar) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, cal); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
