package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default weekly pattern used when a provider has not configured availability
const (
	DefaultDayStart        = "06:00"
	DefaultDayEnd          = "21:00" // inclusive
	DefaultSlotStepMinutes = 60
)

// DefaultUTCOffsetHours is the calendar offset of the service (America/Bogota, no DST)
const DefaultUTCOffsetHours = -5

// Business validation constants
const (
	MaxNoteLength    = 1000
	MaxReasonLength  = 500
	MaxAddressLength = 300
	MaxSlotsPerDay   = 96
)

// OccupyingStatuses are the statuses that consume a slot on the provider's time axis
var OccupyingStatuses = []BookingStatus{
	StatusPendingConfirmation,
	StatusConfirmed,
	StatusBlocked,
}
