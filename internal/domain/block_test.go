package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-FitnessScheduling/pkg/ptr"
	"github.com/m04kA/SMC-FitnessScheduling/pkg/types"
)

func TestBlockedInterval_Covers(t *testing.T) {
	cal := NewFixedCalendar(-5)
	monday, _ := cal.ParseDate("2024-06-03")
	tuesday, _ := cal.ParseDate("2024-06-04")

	wholeDay := &BlockedInterval{Date: monday}
	assert.True(t, wholeDay.Covers(cal, monday, "06:00"))
	assert.True(t, wholeDay.Covers(cal, monday, "21:00"))
	assert.False(t, wholeDay.Covers(cal, tuesday, "06:00"))

	single := &BlockedInterval{Date: monday, Time: ptr.Ptr(types.TimeString("09:00"))}
	assert.True(t, single.Covers(cal, monday, "09:00"))
	assert.False(t, single.Covers(cal, monday, "10:00"))
}

func TestBlockedInterval_Bounds(t *testing.T) {
	cal := NewFixedCalendar(-5)
	monday, _ := cal.ParseDate("2024-06-03")

	start, end := (&BlockedInterval{Date: monday}).Bounds(cal)
	assert.Equal(t, 24*time.Hour, end.Sub(start))

	start, end = (&BlockedInterval{Date: monday, Time: ptr.Ptr(types.TimeString("09:00"))}).Bounds(cal)
	assert.Equal(t, 9, start.In(cal.Location()).Hour())
	assert.Equal(t, time.Hour, end.Sub(start))
}

func TestLocationType_RequiresAddress(t *testing.T) {
	assert.True(t, LocationAtHome.RequiresAddress())
	assert.True(t, LocationType("a domicilio ").RequiresAddress())
	assert.False(t, LocationInPerson.RequiresAddress())
	assert.False(t, LocationType("").RequiresAddress())
}
