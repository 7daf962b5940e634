package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessScheduling/pkg/types"
)

// BlockedInterval is an exception carved out of the weekly pattern.
// A nil Time blocks the whole day.
type BlockedInterval struct {
	ID         uuid.UUID
	ProviderID uuid.UUID
	Date       time.Time
	Time       *types.TimeString
	Reason     string
	CreatedAt  time.Time
}

// IsWholeDay returns true if the block covers the entire day
func (b *BlockedInterval) IsWholeDay() bool {
	return b.Time == nil
}

// Covers reports whether the block removes slot t on the calendar day of date.
func (b *BlockedInterval) Covers(cal *Calendar, date time.Time, t types.TimeString) bool {
	if !cal.DateOf(b.Date).Equal(cal.DateOf(date)) {
		return false
	}
	return b.IsWholeDay() || *b.Time == t
}

// Bounds returns the [start, end) instants the block occupies.
// A time block spans one default slot step.
func (b *BlockedInterval) Bounds(cal *Calendar) (time.Time, time.Time) {
	if b.IsWholeDay() {
		return cal.DayBounds(b.Date)
	}
	start := cal.Combine(b.Date, *b.Time)
	return start, start.Add(DefaultSlotStepMinutes * time.Minute)
}
