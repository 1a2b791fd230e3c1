package booking

import (
	"context"
	"strings"

	"github.com/chretie17/nadege-backend/internal/cache"
	domain "github.com/chretie17/nadege-backend/internal/domain/booking"
	"github.com/chretie17/nadege-backend/internal/httperr"
	"github.com/chretie17/nadege-backend/internal/models"
)

type UpsertDayInput struct {
	DoctorID    uint
	DayOfWeek   string
	StartTime   string
	EndTime     string
	IsAvailable bool
}

type UpsertDay struct {
	repo  domain.Repository
	cache *cache.ScheduleCache
}

func NewUpsertDay(repo domain.Repository, cache *cache.ScheduleCache) *UpsertDay {
	return &UpsertDay{repo: repo, cache: cache}
}

func (uc *UpsertDay) Execute(ctx context.Context, in UpsertDayInput) error {
	window, err := validateWindow(in.DoctorID, in.DayOfWeek, in.StartTime, in.EndTime, in.IsAvailable)
	if err != nil {
		return err
	}

	if err := uc.repo.UpsertDay(ctx, window); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, in.DoctorID)
	return nil
}

// validateWindow normalizes the weekday to its canonical lowercase form
// and enforces start < end for available windows.
func validateWindow(doctorID uint, day, start, end string, isAvailable bool) (*models.DoctorAvailability, error) {
	if day == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput, "Day of week is required")
	}

	day = strings.ToLower(day)
	if !domain.IsValidWeekday(day) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput, "Invalid day of week")
	}

	if isAvailable {
		startT, err := domain.ParseTimeOfDay(start)
		if err != nil {
			return nil, err
		}
		endT, err := domain.ParseTimeOfDay(end)
		if err != nil {
			return nil, err
		}
		if !startT.Before(endT) {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidInput, "Start time must be before end time")
		}
	}

	return &models.DoctorAvailability{
		DoctorID:    doctorID,
		DayOfWeek:   day,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: isAvailable,
	}, nil
}
