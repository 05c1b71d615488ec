package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return client, func() {
		client.Close()
		mr.Close()
	}
}

func TestRedisLiveCache_UpdateAndSnapshot(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	c := NewRedisLiveCache(client)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, c.Update(ctx, sampleAt("user-1", now.Add(-10*time.Second))))
	require.NoError(t, c.Update(ctx, sampleAt("user-2", now.Add(-20*time.Second))))

	positions, err := c.Snapshot(ctx, 5*time.Minute)

	require.NoError(t, err)
	require.Len(t, positions, 2)
}

func TestRedisLiveCache_StalePointDoesNotRegress(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	c := NewRedisLiveCache(client)
	ctx := context.Background()
	now := time.Now()

	fresh := sampleAt("user-1", now)
	fresh.Latitude = 50.0
	require.NoError(t, c.Update(ctx, fresh))

	// Опоздавшая точка проходит тот же compare-and-set и отбрасывается
	stale := sampleAt("user-1", now.Add(-time.Minute))
	stale.Latitude = 40.0
	require.NoError(t, c.Update(ctx, stale))

	positions, err := c.Snapshot(ctx, 5*time.Minute)

	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, 50.0, positions[0].Sample.Latitude)
}

func TestRedisLiveCache_EqualTimestampOverwrites(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	c := NewRedisLiveCache(client)
	ctx := context.Background()
	now := time.Now()

	first := sampleAt("user-1", now)
	first.Latitude = 40.0
	require.NoError(t, c.Update(ctx, first))

	second := sampleAt("user-1", now)
	second.Latitude = 50.0
	require.NoError(t, c.Update(ctx, second))

	positions, err := c.Snapshot(ctx, 5*time.Minute)

	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, 50.0, positions[0].Sample.Latitude)
}

func TestRedisLiveCache_SnapshotFiltersByAge(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	c := NewRedisLiveCache(client)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, c.Update(ctx, sampleAt("fresh", now.Add(-30*time.Second))))
	require.NoError(t, c.Update(ctx, sampleAt("stale", now.Add(-10*time.Minute))))

	positions, err := c.Snapshot(ctx, 5*time.Minute)

	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, "fresh", positions[0].UserID)
	assert.InDelta(t, 30, positions[0].AgeSeconds, 2)
}

func TestRedisLiveCache_SnapshotSkipsCorruptEntry(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	c := NewRedisLiveCache(client)
	ctx := context.Background()

	require.NoError(t, c.Update(ctx, sampleAt("user-1", time.Now())))
	require.NoError(t, client.HSet(ctx, liveKey("broken"), "payload", "not-json").Err())

	positions, err := c.Snapshot(ctx, 5*time.Minute)

	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, "user-1", positions[0].UserID)
}
