package schedules

import (
	"fmt"
	"time"
)

// Weekdays es el vocabulario válido para DaysOfWeek, en el orden de time.Weekday.
var Weekdays = []string{
	time.Sunday.String(),
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
}

func WeekdayName(t time.Time) string {
	return t.Weekday().String()
}

func IsWeekday(name string) bool {
	for _, d := range Weekdays {
		if d == name {
			return true
		}
	}
	return false
}

// ParseTimeOfDay acepta solo HH:MM con dos dígitos en cada parte.
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, fmt.Errorf("invalid time of day %q", s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time of day %q", s)
	}
	return t.Hour(), t.Minute(), nil
}

func ValidTimeOfDay(s string) bool {
	_, _, err := ParseTimeOfDay(s)
	return err == nil
}

// DayWindow devuelve [inicio de hoy, inicio de mañana) en la zona de now.
func DayWindow(now time.Time) (start, end time.Time) {
	y, m, d := now.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// At combina la fecha de day con un HH:MM, en la zona de day.
func At(day time.Time, hhmm string) (time.Time, error) {
	h, m, err := ParseTimeOfDay(hhmm)
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := day.Date()
	return time.Date(y, mo, d, h, m, 0, 0, day.Location()), nil
}
