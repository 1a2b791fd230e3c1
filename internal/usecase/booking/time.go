package booking

import (
	"time"

	"github.com/chretie17/nadege-backend/internal/httperr"
	"github.com/chretie17/nadege-backend/internal/timezone"
)

const dateLayout = "2006-01-02"

func parseDate(dateStr, tz string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, dateStr, timezone.Location(tz))
	if err != nil {
		return time.Time{}, httperr.ErrBusiness(httperr.CodeInvalidInput, "Invalid date")
	}
	return d, nil
}

// isPastDate compares calendar days in the clinic timezone: today is
// bookable, yesterday is not.
func isPastDate(date time.Time, tz string) bool {
	now := timezone.NowIn(tz)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return date.Before(today)
}
