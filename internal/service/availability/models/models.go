package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/internal/domain"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/types"
)

// Request модели

// DayDTO день недельного расписания
type DayDTO struct {
	DayName   string   `json:"dayName"`   // "Lunes"
	TimeSlots []string `json:"timeSlots"` // ["09:00", "10:00"]
}

// SetAvailabilityRequest запрос на полную замену недельного расписания
type SetAvailabilityRequest struct {
	CallerID   uuid.UUID `json:"-"`
	ProviderID uuid.UUID `json:"-"`
	Days       []DayDTO  `json:"days"`
}

// ToDomainDays конвертирует DTO в доменные дни без проверки формата (её делает домен)
func (r *SetAvailabilityRequest) ToDomainDays() []domain.AvailabilityDay {
	days := make([]domain.AvailabilityDay, 0, len(r.Days))
	for _, d := range r.Days {
		slots := make([]types.TimeString, len(d.TimeSlots))
		for i, s := range d.TimeSlots {
			slots[i] = types.TimeString(s)
		}
		days = append(days, domain.AvailabilityDay{DayName: domain.DayName(d.DayName), TimeSlots: slots})
	}
	return days
}

// AddBlockRequest запрос на добавление исключения
type AddBlockRequest struct {
	CallerID   uuid.UUID `json:"-"`
	ProviderID uuid.UUID `json:"-"`
	Date       string    `json:"date"`           // "2025-10-15"
	Time       *string   `json:"time,omitempty"` // nil - весь день
	Reason     string    `json:"reason"`
}

// ToDomainBlock конвертирует запрос в доменную модель
func (r *AddBlockRequest) ToDomainBlock(cal *domain.Calendar) (*domain.BlockedInterval, error) {
	date, err := cal.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}

	block := &domain.BlockedInterval{
		ProviderID: r.ProviderID,
		Date:       date,
		Reason:     r.Reason,
	}

	if r.Time != nil {
		t, err := types.NewTimeStringFromString(*r.Time)
		if err != nil {
			return nil, fmt.Errorf("invalid time %q: %w", *r.Time, err)
		}
		block.Time = &t
	}

	return block, nil
}

// Response модели

// AvailabilityResponse недельное расписание провайдера
type AvailabilityResponse struct {
	ProviderID uuid.UUID `json:"providerId"`
	Configured bool      `json:"configured"` // false - отдано расписание по умолчанию
	Days       []DayDTO  `json:"days"`
}

// BlockResponse исключение из расписания
type BlockResponse struct {
	ID         uuid.UUID `json:"id"`
	ProviderID uuid.UUID `json:"providerId"`
	Date       string    `json:"date"`
	Time       *string   `json:"time,omitempty"`
	WholeDay   bool      `json:"wholeDay"`
	StartsAt   time.Time `json:"startsAt"`
	EndsAt     time.Time `json:"endsAt"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BlockListResponse список исключений
type BlockListResponse struct {
	Blocks []BlockResponse `json:"blocks"`
}

// Методы конвертации

// FromDomainPattern конвертирует недельное расписание в DTO
func FromDomainPattern(providerID uuid.UUID, pattern domain.WeeklyPattern, configured bool) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		ProviderID: providerID,
		Configured: configured,
		Days:       make([]DayDTO, 0, len(pattern)),
	}

	for _, day := range pattern {
		dto := DayDTO{DayName: string(day.DayName), TimeSlots: make([]string, len(day.TimeSlots))}
		for i, slot := range day.TimeSlots {
			dto.TimeSlots[i] = slot.String()
		}
		resp.Days = append(resp.Days, dto)
	}

	return resp
}

// FromDomainBlock конвертирует исключение в DTO
func FromDomainBlock(b *domain.BlockedInterval, cal *domain.Calendar) *BlockResponse {
	if b == nil {
		return nil
	}

	start, end := b.Bounds(cal)
	resp := &BlockResponse{
		ID:         b.ID,
		ProviderID: b.ProviderID,
		Date:       cal.FormatDate(b.Date),
		WholeDay:   b.IsWholeDay(),
		StartsAt:   start,
		EndsAt:     end,
		Reason:     b.Reason,
		CreatedAt:  b.CreatedAt,
	}
	if b.Time != nil {
		t := b.Time.String()
		resp.Time = &t
	}

	return resp
}

// FromDomainBlockList конвертирует список исключений в DTO
func FromDomainBlockList(blocks []*domain.BlockedInterval, cal *domain.Calendar) *BlockListResponse {
	resp := &BlockListResponse{Blocks: make([]BlockResponse, 0, len(blocks))}
	for _, b := range blocks {
		if dto := FromDomainBlock(b, cal); dto != nil {
			resp.Blocks = append(resp.Blocks, *dto)
		}
	}
	return resp
}
