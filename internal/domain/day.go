package domain

import (
	"strings"
	"time"
)

// DayName is a Spanish weekday name as stored in availability patterns.
type DayName string

const (
	Lunes     DayName = "Lunes"
	Martes    DayName = "Martes"
	Miercoles DayName = "Miércoles"
	Jueves    DayName = "Jueves"
	Viernes   DayName = "Viernes"
	Sabado    DayName = "Sábado"
	Domingo   DayName = "Domingo"
)

// WeekDays lists the days starting from Monday.
var WeekDays = []DayName{Lunes, Martes, Miercoles, Jueves, Viernes, Sabado, Domingo}

var weekdayNames = map[time.Weekday]DayName{
	time.Monday:    Lunes,
	time.Tuesday:   Martes,
	time.Wednesday: Miercoles,
	time.Thursday:  Jueves,
	time.Friday:    Viernes,
	time.Saturday:  Sabado,
	time.Sunday:    Domingo,
}

var accentReplacer = strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u")

// DayNameFromWeekday maps a time.Weekday to its day name.
func DayNameFromWeekday(w time.Weekday) DayName {
	return weekdayNames[w]
}

// ParseDayName accepts a day name in any case, with or without accents.
func ParseDayName(s string) (DayName, bool) {
	key := normalizeDayKey(s)
	for _, d := range WeekDays {
		if normalizeDayKey(string(d)) == key {
			return d, true
		}
	}
	return "", false
}

func normalizeDayKey(s string) string {
	return accentReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
}
