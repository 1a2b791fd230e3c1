package booking

import (
	"time"

	"github.com/chretie17/nadege-backend/internal/httperr"
)

// ===============================
// Slots
// ===============================

// Slot is a computed candidate booking time. Never persisted.
type Slot struct {
	Time        string `json:"time"`         // "15:04:05"
	DisplayTime string `json:"display_time"` // "3:04 PM"
}

// Window is one availability interval, times as "HH:MM" or "HH:MM:SS".
type Window struct {
	Start string
	End   string
}

const DefaultSlotInterval = 30 * time.Minute

// ParseTimeOfDay accepts "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (time.Time, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(2000, time.January, 1, t.Hour(), t.Minute(), 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, httperr.ErrBusiness(httperr.CodeInvalidInput, "Invalid time: "+s)
}

// NormalizeTime truncates a stored time-of-day to minute granularity so
// that "09:00:00" and "09:00" compare equal.
func NormalizeTime(s string) string {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		return s
	}
	return t.Format("15:04")
}

// FormatDisplay renders a time-of-day string in the portal's 12-hour form.
func FormatDisplay(s string) string {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		return s
	}
	return t.Format("3:04 PM")
}

// GenerateSlots expands availability windows into fixed-interval slots,
// start inclusive, end exclusive, skipping any time present in booked.
// Booked times may carry seconds; comparison is at minute granularity.
//
// Doctors may declare overlapping shifts; each window is expanded
// independently and duplicates stay in unless dedup is set.
func GenerateSlots(windows []Window, booked []string, interval time.Duration, dedup bool) ([]Slot, error) {
	if interval <= 0 {
		interval = DefaultSlotInterval
	}

	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[NormalizeTime(b)] = struct{}{}
	}

	var seen map[string]struct{}
	if dedup {
		seen = make(map[string]struct{})
	}

	var slots []Slot
	for _, w := range windows {
		start, err := ParseTimeOfDay(w.Start)
		if err != nil {
			return nil, err
		}
		end, err := ParseTimeOfDay(w.End)
		if err != nil {
			return nil, err
		}

		for cur := start; cur.Before(end); cur = cur.Add(interval) {
			key := cur.Format("15:04")

			if _, ok := taken[key]; ok {
				continue
			}
			if dedup {
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
			}

			slots = append(slots, Slot{
				Time:        cur.Format("15:04:05"),
				DisplayTime: cur.Format("3:04 PM"),
			})
		}
	}

	return slots, nil
}
