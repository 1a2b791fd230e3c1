package booking

import (
	"context"
	"strings"

	"github.com/chretie17/nadege-backend/internal/cache"
	domain "github.com/chretie17/nadege-backend/internal/domain/booking"
	"github.com/chretie17/nadege-backend/internal/httperr"
)

type DeleteDay struct {
	repo  domain.Repository
	cache *cache.ScheduleCache
}

func NewDeleteDay(repo domain.Repository, cache *cache.ScheduleCache) *DeleteDay {
	return &DeleteDay{repo: repo, cache: cache}
}

func (uc *DeleteDay) Execute(ctx context.Context, doctorID uint, day string) error {
	day = strings.ToLower(day)
	if !domain.IsValidWeekday(day) {
		return httperr.ErrBusiness(httperr.CodeInvalidInput, "Invalid day of week")
	}

	if err := uc.repo.DeleteDay(ctx, doctorID, day); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, doctorID)
	return nil
}
