package booking

import (
	"context"

	"github.com/chretie17/nadege-backend/internal/cache"
	domain "github.com/chretie17/nadege-backend/internal/domain/booking"
	"github.com/chretie17/nadege-backend/internal/models"
)

type ScheduleDayInput struct {
	DayOfWeek   string
	StartTime   string
	EndTime     string
	IsAvailable bool
}

type ReplaceSchedule struct {
	repo  domain.Repository
	cache *cache.ScheduleCache
}

func NewReplaceSchedule(repo domain.Repository, cache *cache.ScheduleCache) *ReplaceSchedule {
	return &ReplaceSchedule{repo: repo, cache: cache}
}

// Execute atomically overwrites a doctor's whole weekly schedule. An
// empty input clears it.
func (uc *ReplaceSchedule) Execute(
	ctx context.Context,
	doctorID uint,
	days []ScheduleDayInput,
) error {

	windows := make([]models.DoctorAvailability, 0, len(days))
	for _, d := range days {
		window, err := validateWindow(doctorID, d.DayOfWeek, d.StartTime, d.EndTime, d.IsAvailable)
		if err != nil {
			return err
		}
		windows = append(windows, *window)
	}

	if err := uc.repo.ReplaceSchedule(ctx, doctorID, windows); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, doctorID)
	return nil
}
