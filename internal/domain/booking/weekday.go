package booking

import (
	"strings"
	"time"
)

// ===============================
// Weekdays
// ===============================

// Canonical lowercase weekday names, Monday first. Schedules are stored
// and returned in this order.
var Weekdays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

func IsValidWeekday(day string) bool {
	day = strings.ToLower(day)
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// WeekdayIndex returns the Monday-first position of day, or -1.
func WeekdayIndex(day string) int {
	day = strings.ToLower(day)
	for i, d := range Weekdays {
		if d == day {
			return i
		}
	}
	return -1
}

// WeekdayName resolves a calendar date to its canonical weekday name.
func WeekdayName(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}
