package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geo_tracking_system/internal/models"
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

func newCacheOnlyRepo(client *redis.Client) *GeofenceRepository {
	// db остается nil: тесты кэша не должны доходить до PostgreSQL
	return &GeofenceRepository{
		redisClient: client,
		cacheTTL:    time.Minute,
	}
}

func activeFence(name string) *models.Geofence {
	return &models.Geofence{
		ID:              uuid.New(),
		OrganizationID:  uuid.New(),
		Name:            name,
		Kind:            models.GeofenceCircle,
		CenterLatitude:  55.75,
		CenterLongitude: 37.61,
		RadiusMeters:    100,
		AutoClockIn:     true,
		IsActive:        true,
	}
}

func TestActiveForUser_ServedFromCache(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	repo := newCacheOnlyRepo(client)
	ctx := context.Background()

	fence := activeFence("Склад")
	require.NoError(t, repo.setActiveGeofencesCache(ctx, "user-1", []*models.Geofence{fence}))

	// db == nil: попадание в кэш обязано вернуть список без запроса к бд
	fences, err := repo.ActiveForUser(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, fences, 1)
	assert.Equal(t, fence.ID, fences[0].ID)
	assert.Equal(t, "Склад", fences[0].Name)
	assert.True(t, fences[0].AutoClockIn)
}

func TestActiveGeofencesCache_EmptyListIsAHit(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	repo := newCacheOnlyRepo(client)
	ctx := context.Background()

	require.NoError(t, repo.setActiveGeofencesCache(ctx, "user-1", []*models.Geofence{}))

	fences, err := repo.activeGeofencesFromCache(ctx, "user-1")

	require.NoError(t, err)
	require.NotNil(t, fences)
	assert.Empty(t, fences)
}

func TestActiveGeofencesCache_MissReturnsNil(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	repo := newCacheOnlyRepo(client)

	fences, err := repo.activeGeofencesFromCache(context.Background(), "unknown")

	require.NoError(t, err)
	assert.Nil(t, fences)
}

func TestActiveGeofencesCache_SetAppliesTTL(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	repo := newCacheOnlyRepo(client)
	ctx := context.Background()

	require.NoError(t, repo.setActiveGeofencesCache(ctx, "user-1", []*models.Geofence{activeFence("Офис")}))

	ttl, err := client.TTL(ctx, activeGeofencesKey("user-1")).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestInvalidateActiveGeofencesCache_DropsAllUsers(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	repo := newCacheOnlyRepo(client)
	ctx := context.Background()

	require.NoError(t, repo.setActiveGeofencesCache(ctx, "user-1", []*models.Geofence{activeFence("Склад")}))
	require.NoError(t, repo.setActiveGeofencesCache(ctx, "user-2", []*models.Geofence{activeFence("Офис")}))

	require.NoError(t, repo.invalidateActiveGeofencesCache(ctx))

	for _, userID := range []string{"user-1", "user-2"} {
		fences, err := repo.activeGeofencesFromCache(ctx, userID)
		require.NoError(t, err)
		assert.Nil(t, fences)
	}
}
