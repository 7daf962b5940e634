package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FitnessScheduling/pkg/types"
)

// Calendar interprets dates and times of day in a single fixed-offset zone.
// All "which day is it" decisions go through a Calendar so results never depend
// on the host's local zone.
type Calendar struct {
	loc *time.Location
}

// NewCalendar creates a calendar pinned to loc.
func NewCalendar(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{loc: loc}
}

// NewFixedCalendar creates a calendar with a fixed UTC offset in whole hours.
func NewFixedCalendar(offsetHours int) *Calendar {
	name := fmt.Sprintf("UTC%+03d:00", offsetHours)
	return NewCalendar(time.FixedZone(name, offsetHours*3600))
}

// Location returns the calendar zone.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// DateOf returns midnight of the calendar day that contains instant.
func (c *Calendar) DateOf(instant time.Time) time.Time {
	local := instant.In(c.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.loc)
}

// Today returns midnight of the current calendar day.
func (c *Calendar) Today(now time.Time) time.Time {
	return c.DateOf(now)
}

// ParseDate parses a YYYY-MM-DD string as a calendar day.
func (c *Calendar) ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, c.loc)
}

// FormatDate formats the calendar day of instant as YYYY-MM-DD.
func (c *Calendar) FormatDate(instant time.Time) string {
	return instant.In(c.loc).Format(DateFormat)
}

// DayName returns the weekday name of the calendar day containing date.
func (c *Calendar) DayName(date time.Time) DayName {
	return DayNameFromWeekday(date.In(c.loc).Weekday())
}

// Combine returns the instant of time-of-day t on the calendar day of date.
func (c *Calendar) Combine(date time.Time, t types.TimeString) time.Time {
	d := c.DateOf(date)
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, c.loc)
}

// TimeOf returns the HH:MM time of day of instant in the calendar zone.
func (c *Calendar) TimeOf(instant time.Time) types.TimeString {
	return types.NewTimeString(instant.In(c.loc))
}

// DayBounds returns [start, end) instants of the calendar day containing date.
func (c *Calendar) DayBounds(date time.Time) (time.Time, time.Time) {
	start := c.DateOf(date)
	return start, start.AddDate(0, 0, 1)
}

// IsBeforeToday reports whether the calendar day of date is strictly before today.
func (c *Calendar) IsBeforeToday(date, now time.Time) bool {
	return c.DateOf(date).Before(c.Today(now))
}
