package domain

import "errors"

var (
	// ErrInvalidDayName is returned for a day name outside the seven weekdays
	ErrInvalidDayName = errors.New("domain: invalid day name")

	// ErrDuplicateDay is returned when a weekly pattern lists the same day twice
	ErrDuplicateDay = errors.New("domain: duplicate day in weekly pattern")

	// ErrInvalidTimeSlot is returned for a slot that is not HH:MM
	ErrInvalidTimeSlot = errors.New("domain: invalid time slot")

	// ErrDuplicateTimeSlot is returned when a day lists the same slot twice
	ErrDuplicateTimeSlot = errors.New("domain: duplicate time slot")

	// ErrTooManySlots is returned when a day exceeds MaxSlotsPerDay
	ErrTooManySlots = errors.New("domain: too many time slots in a day")

	// ErrInvalidTransition is returned for a status change the lifecycle does not allow
	ErrInvalidTransition = errors.New("domain: invalid booking status transition")

	// ErrInvalidStatus is returned for an unknown booking status
	ErrInvalidStatus = errors.New("domain: invalid booking status")
)
