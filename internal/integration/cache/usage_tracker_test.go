package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

func newTracker(t *testing.T, now time.Time) (*UsageTracker, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	server.SetTime(now)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	tracker := NewUsageTracker(client, 2, 3)
	tracker.now = func() time.Time { return now }
	return tracker, server
}

func reserve(t *testing.T, tracker *UsageTracker, userID uuid.UUID) {
	t.Helper()
	_, ok, err := tracker.Reserve(context.Background(), userID)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestUsageTracker_FreshUser(t *testing.T) {
	now := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
	tracker, _ := newTracker(t, now)

	info, err := tracker.Usage(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, entity.NewUsageInfo(0, 2, 0, 3), info)
	assert.True(t, info.Allowed())
}

func TestUsageTracker_ReserveUntilDailyLimit(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
	tracker, server := newTracker(t, now)
	userID := uuid.New()

	reserve(t, tracker, userID)
	reserve(t, tracker, userID)

	info, err := tracker.Usage(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, info.DailyUsed)
	assert.Equal(t, 0, info.DailyRemaining)
	assert.Equal(t, 1, info.MonthlyRemaining)
	assert.False(t, info.Allowed())

	dayKey := dailyKey(userID, now)
	monthKey := monthlyKey(userID, now)
	assert.Equal(t, 14*time.Hour, server.TTL(dayKey))
	assert.Equal(t, endOfMonth(now).Sub(now), server.TTL(monthKey))
}

func TestUsageTracker_NewDayResetsDailyCounter(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.March, 14, 23, 0, 0, 0, time.UTC)
	tracker, server := newTracker(t, now)
	userID := uuid.New()

	reserve(t, tracker, userID)
	reserve(t, tracker, userID)

	server.FastForward(2 * time.Hour)
	tomorrow := now.Add(2 * time.Hour)
	tracker.now = func() time.Time { return tomorrow }

	info, err := tracker.Usage(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, info.DailyUsed)
	assert.Equal(t, 2, info.MonthlyUsed)
	assert.True(t, info.Allowed())
}

func TestUsageTracker_RedisDown(t *testing.T) {
	now := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
	tracker, server := newTracker(t, now)
	server.Close()

	_, err := tracker.Usage(context.Background(), uuid.New())
	assert.Error(t, err)
	_, _, err = tracker.Reserve(context.Background(), uuid.New())
	assert.Error(t, err)
	assert.Error(t, tracker.Release(context.Background(), uuid.New()))
}

func TestUsageTracker_ReserveRejectsWithoutConsuming(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
	tracker, _ := newTracker(t, now)
	userID := uuid.New()

	reserve(t, tracker, userID)
	reserve(t, tracker, userID)

	info, ok, err := tracker.Reserve(ctx, userID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, info.DailyRemaining)

	info, err = tracker.Usage(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, info.DailyUsed)
	assert.Equal(t, 2, info.MonthlyUsed)
}

func TestUsageTracker_ConcurrentReservationsStayWithinLimit(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
	tracker, _ := newTracker(t, now)
	userID := uuid.New()

	var (
		wg      sync.WaitGroup
		granted atomic.Int32
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok, err := tracker.Reserve(ctx, userID); err == nil && ok {
				granted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(2), granted.Load())

	info, err := tracker.Usage(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, info.DailyUsed)
	assert.Equal(t, 2, info.MonthlyUsed)
}

func TestUsageTracker_Release(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
	tracker, server := newTracker(t, now)
	userID := uuid.New()

	reserve(t, tracker, userID)
	require.NoError(t, tracker.Release(ctx, userID))

	info, err := tracker.Usage(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, info.DailyUsed)
	assert.Equal(t, 0, info.MonthlyUsed)
	assert.Equal(t, 14*time.Hour, server.TTL(dailyKey(userID, now)))

	t.Run("never goes below zero", func(t *testing.T) {
		require.NoError(t, tracker.Release(ctx, userID))
		require.NoError(t, tracker.Release(ctx, uuid.New()))

		info, err := tracker.Usage(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 0, info.DailyUsed)
		assert.Equal(t, 0, info.MonthlyUsed)
	})
}

func TestEndOfPeriod(t *testing.T) {
	now := time.Date(2026, time.December, 31, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), endOfDay(now))
	assert.Equal(t, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), endOfMonth(now))
}
