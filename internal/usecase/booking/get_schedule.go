package booking

import (
	"context"

	"github.com/chretie17/nadege-backend/internal/cache"
	domain "github.com/chretie17/nadege-backend/internal/domain/booking"
	"github.com/chretie17/nadege-backend/internal/models"
)

type GetSchedule struct {
	repo  domain.Repository
	cache *cache.ScheduleCache
}

func NewGetSchedule(repo domain.Repository, cache *cache.ScheduleCache) *GetSchedule {
	return &GetSchedule{repo: repo, cache: cache}
}

func (uc *GetSchedule) Execute(
	ctx context.Context,
	doctorID uint,
) ([]models.DoctorAvailability, error) {

	if windows, ok := uc.cache.Get(ctx, doctorID); ok {
		return windows, nil
	}

	windows, err := uc.repo.GetSchedule(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, doctorID, windows)
	return windows, nil
}
