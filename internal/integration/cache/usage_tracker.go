// Package cache implements Redis backed adapters.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
)

const usageKeyPrefix = "usage"

// UsageTracker implements adapter.UsageTracker with one Redis counter per
// user per day and per month. Each counter expires when its period ends.
type UsageTracker struct {
	client       redis.Cmdable
	dailyLimit   int
	monthlyLimit int
	now          func() time.Time
}

var _ adapter.UsageTracker = (*UsageTracker)(nil)

// NewUsageTracker creates a tracker enforcing the given limits.
func NewUsageTracker(client redis.Cmdable, dailyLimit, monthlyLimit int) *UsageTracker {
	return &UsageTracker{
		client:       client,
		dailyLimit:   dailyLimit,
		monthlyLimit: monthlyLimit,
		now:          time.Now,
	}
}

// Usage returns the current counters. Missing keys count as zero.
func (t *UsageTracker) Usage(ctx context.Context, userID uuid.UUID) (entity.UsageInfo, error) {
	now := t.now().UTC()

	values, err := t.client.MGet(ctx, dailyKey(userID, now), monthlyKey(userID, now)).Result()
	if err != nil {
		return entity.UsageInfo{}, fmt.Errorf("failed to read usage counters: %w", err)
	}

	daily, err := counterValue(values[0])
	if err != nil {
		return entity.UsageInfo{}, err
	}
	monthly, err := counterValue(values[1])
	if err != nil {
		return entity.UsageInfo{}, err
	}

	return entity.NewUsageInfo(daily, t.dailyLimit, monthly, t.monthlyLimit), nil
}

// Reserve takes one unit from both windows before the work runs, so
// concurrent callers can never push a counter past its limit. When either
// window is already full the unit is handed back and ok is false.
func (t *UsageTracker) Reserve(ctx context.Context, userID uuid.UUID) (entity.UsageInfo, bool, error) {
	now := t.now().UTC()
	day := dailyKey(userID, now)
	month := monthlyKey(userID, now)

	var dayCount, monthCount *redis.IntCmd
	_, err := t.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		dayCount = pipe.Incr(ctx, day)
		pipe.ExpireAt(ctx, day, endOfDay(now))
		monthCount = pipe.Incr(ctx, month)
		pipe.ExpireAt(ctx, month, endOfMonth(now))
		return nil
	})
	if err != nil {
		return entity.UsageInfo{}, false, fmt.Errorf("failed to reserve usage: %w", err)
	}

	daily, monthly := int(dayCount.Val()), int(monthCount.Val())
	if daily <= t.dailyLimit && monthly <= t.monthlyLimit {
		return entity.NewUsageInfo(daily, t.dailyLimit, monthly, t.monthlyLimit), true, nil
	}

	if err := t.release(ctx, day, month); err != nil {
		return entity.UsageInfo{}, false, err
	}
	return entity.NewUsageInfo(daily-1, t.dailyLimit, monthly-1, t.monthlyLimit), false, nil
}

// Release hands back a unit taken by Reserve whose work did not succeed.
func (t *UsageTracker) Release(ctx context.Context, userID uuid.UUID) error {
	now := t.now().UTC()
	return t.release(ctx, dailyKey(userID, now), monthlyKey(userID, now))
}

// releaseScript never drops a counter below zero, so a release that lands
// after the window rolled over leaves the fresh counter alone.
var releaseScript = redis.NewScript(`
for _, key in ipairs(KEYS) do
	local n = tonumber(redis.call("GET", key) or "0")
	if n > 0 then
		redis.call("DECR", key)
	end
end
return 0
`)

func (t *UsageTracker) release(ctx context.Context, day, month string) error {
	if err := releaseScript.Run(ctx, t.client, []string{day, month}).Err(); err != nil {
		return fmt.Errorf("failed to release usage: %w", err)
	}
	return nil
}

func counterValue(raw any) (int, error) {
	if raw == nil {
		return 0, nil
	}
	s, ok := raw.(string)
	if !ok {
		return 0, errors.New("unexpected usage counter type")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("failed to parse usage counter: %w", err)
	}
	return n, nil
}

func dailyKey(userID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("%s:%s:day:%s", usageKeyPrefix, userID, now.Format("2006-01-02"))
}

func monthlyKey(userID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("%s:%s:month:%s", usageKeyPrefix, userID, now.Format("2006-01"))
}

func endOfDay(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, time.UTC)
}

func endOfMonth(now time.Time) time.Time {
	y, m, _ := now.Date()
	return time.Date(y, m+1, 1, 0, 0, 0, 0, time.UTC)
}
