package domain

import (
	"fmt"

	"github.com/m04kA/SMC-FitnessScheduling/pkg/types"
)

// AvailabilityDay is the set of open time slots of a provider on one weekday.
// TimeSlots keep the order the provider configured.
type AvailabilityDay struct {
	DayName   DayName
	TimeSlots []types.TimeString
}

// WeeklyPattern is the recurring availability of a provider.
// A day absent from the pattern has no availability.
type WeeklyPattern []AvailabilityDay

// Day returns the pattern entry for name.
func (p WeeklyPattern) Day(name DayName) (AvailabilityDay, bool) {
	for _, d := range p {
		if d.DayName == name {
			return d, true
		}
	}
	return AvailabilityDay{}, false
}

// DefaultTimeSlots returns hourly slots from DefaultDayStart to DefaultDayEnd inclusive.
func DefaultTimeSlots() []types.TimeString {
	start := types.MustTimeString(DefaultDayStart)
	end := types.MustTimeString(DefaultDayEnd)

	slots := make([]types.TimeString, 0, 16)
	for t := start; !t.IsAfter(end); {
		slots = append(slots, t)
		next, err := t.AddMinutes(DefaultSlotStepMinutes)
		if err != nil {
			break
		}
		t = next
	}
	return slots
}

// DefaultWeeklyPattern is served to providers who never configured availability.
func DefaultWeeklyPattern() WeeklyPattern {
	pattern := make(WeeklyPattern, 0, len(WeekDays))
	for _, day := range WeekDays {
		pattern = append(pattern, AvailabilityDay{DayName: day, TimeSlots: DefaultTimeSlots()})
	}
	return pattern
}

// NormalizeWeeklyPattern validates days and returns them with canonical day names.
// Days may be empty; empty days are dropped since absence already means "closed".
func NormalizeWeeklyPattern(days []AvailabilityDay) (WeeklyPattern, error) {
	seenDays := make(map[DayName]struct{}, len(days))
	result := make(WeeklyPattern, 0, len(days))

	for _, day := range days {
		name, ok := ParseDayName(string(day.DayName))
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDayName, day.DayName)
		}
		if _, dup := seenDays[name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDay, name)
		}
		seenDays[name] = struct{}{}

		if len(day.TimeSlots) > MaxSlotsPerDay {
			return nil, fmt.Errorf("%w: %s has %d slots", ErrTooManySlots, name, len(day.TimeSlots))
		}

		slots := make([]types.TimeString, 0, len(day.TimeSlots))
		seenSlots := make(map[types.TimeString]struct{}, len(day.TimeSlots))
		for _, raw := range day.TimeSlots {
			slot, err := types.NewTimeStringFromString(string(raw))
			if err != nil {
				return nil, fmt.Errorf("%w: %s %q", ErrInvalidTimeSlot, name, raw)
			}
			if _, dup := seenSlots[slot]; dup {
				return nil, fmt.Errorf("%w: %s %s", ErrDuplicateTimeSlot, name, slot)
			}
			seenSlots[slot] = struct{}{}
			slots = append(slots, slot)
		}

		if len(slots) == 0 {
			continue
		}
		result = append(result, AvailabilityDay{DayName: name, TimeSlots: slots})
	}

	return result, nil
}
