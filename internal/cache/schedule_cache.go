package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/chretie17/nadege-backend/internal/models"
)

const scheduleTTL = 5 * time.Minute

// ScheduleCache keeps doctors' weekly schedules in Redis. Schedules
// change rarely and are read on every slot lookup. A nil cache is a
// no-op, so callers never branch on whether Redis is configured.
type ScheduleCache struct {
	rdb *redis.Client
}

func NewScheduleCache(addr string) *ScheduleCache {
	if addr == "" {
		return nil
	}

	return &ScheduleCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func scheduleKey(doctorID uint) string {
	return fmt.Sprintf("schedule:doctor:%d", doctorID)
}

func (c *ScheduleCache) Get(ctx context.Context, doctorID uint) ([]models.DoctorAvailability, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, scheduleKey(doctorID)).Bytes()
	if err != nil {
		return nil, false
	}

	var windows []models.DoctorAvailability
	if err := json.Unmarshal(raw, &windows); err != nil {
		return nil, false
	}

	return windows, true
}

func (c *ScheduleCache) Set(ctx context.Context, doctorID uint, windows []models.DoctorAvailability) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(windows)
	if err != nil {
		return
	}

	c.rdb.Set(ctx, scheduleKey(doctorID), raw, scheduleTTL)
}

func (c *ScheduleCache) Invalidate(ctx context.Context, doctorID uint) {
	if c == nil {
		return
	}

	c.rdb.Del(ctx, scheduleKey(doctorID))
}
