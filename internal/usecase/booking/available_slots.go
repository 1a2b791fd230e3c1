package booking

import (
	"context"
	"time"

	domain "github.com/chretie17/nadege-backend/internal/domain/booking"
	"github.com/chretie17/nadege-backend/internal/httperr"
)

type AvailableSlotsResult struct {
	AvailableSlots []domain.Slot `json:"available_slots"`
	Message        string        `json:"message,omitempty"`
}

type AvailableSlots struct {
	repo     domain.Repository
	timezone string
	interval time.Duration
	dedup    bool
}

func NewAvailableSlots(
	repo domain.Repository,
	tz string,
	interval time.Duration,
	dedup bool,
) *AvailableSlots {
	if interval <= 0 {
		interval = domain.DefaultSlotInterval
	}
	return &AvailableSlots{
		repo:     repo,
		timezone: tz,
		interval: interval,
		dedup:    dedup,
	}
}

// Execute computes the free slots for (doctor, date): the doctor's
// available windows for that weekday, expanded and minus the times
// already held by pending/confirmed appointments. Always a fresh read,
// occupancy must not be stale.
func (uc *AvailableSlots) Execute(
	ctx context.Context,
	doctorID uint,
	dateStr string,
) (*AvailableSlotsResult, error) {

	date, err := parseDate(dateStr, uc.timezone)
	if err != nil {
		return nil, err
	}

	if isPastDate(date, uc.timezone) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput, "Cannot book appointments for past dates")
	}

	windows, err := uc.repo.GetAvailableWindows(ctx, doctorID, domain.WeekdayName(date))
	if err != nil {
		return nil, err
	}

	if len(windows) == 0 {
		return &AvailableSlotsResult{
			AvailableSlots: []domain.Slot{},
			Message:        "Doctor not available on this day",
		}, nil
	}

	booked, err := uc.repo.ListBookedTimes(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	spans := make([]domain.Window, 0, len(windows))
	for _, w := range windows {
		spans = append(spans, domain.Window{Start: w.StartTime, End: w.EndTime})
	}

	slots, err := domain.GenerateSlots(spans, booked, uc.interval, uc.dedup)
	if err != nil {
		return nil, err
	}

	if slots == nil {
		slots = []domain.Slot{}
	}

	return &AvailableSlotsResult{AvailableSlots: slots}, nil
}
