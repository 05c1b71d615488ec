package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geo_tracking_system/internal/models"
	"github.com/shenikar/geo_tracking_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDetector(t *testing.T) (*EventDetector, *mocks.MockTrackRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockTrackRepository(ctrl)
	return NewEventDetector(repoMock), repoMock
}

func sampleAt(userID string, ts time.Time) models.LocationSample {
	return models.LocationSample{
		UserID:    userID,
		Timestamp: ts,
		Latitude:  55.75,
		Longitude: 37.61,
	}
}

func TestDetect_FirstPointInside_EmitsEnter(t *testing.T) {
	detector, repoMock := newTestDetector(t)
	ctx := context.Background()
	fenceID := uuid.New()
	sample := sampleAt("user-1", time.Now())

	// Истории для пары нет
	repoMock.EXPECT().LastEvent(ctx, "user-1", fenceID).Return(nil, nil).Times(1)

	event, err := detector.Detect(ctx, sample, fenceID, true)

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, models.GeoEventEnter, event.Type)
	assert.Equal(t, "user-1", event.UserID)
	assert.Equal(t, fenceID, event.GeofenceID)
	assert.Equal(t, sample.Timestamp, event.OccurredAt)
}

func TestDetect_FirstPointOutside_NoEvent(t *testing.T) {
	detector, repoMock := newTestDetector(t)
	ctx := context.Background()
	fenceID := uuid.New()

	repoMock.EXPECT().LastEvent(ctx, "user-1", fenceID).Return(nil, nil).Times(1)

	event, err := detector.Detect(ctx, sampleAt("user-1", time.Now()), fenceID, false)

	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestDetect_SeedsStateFromRepository(t *testing.T) {
	detector, repoMock := newTestDetector(t)
	ctx := context.Background()
	fenceID := uuid.New()
	lastEnter := &models.GeoEvent{
		UserID:     "user-1",
		GeofenceID: fenceID,
		Type:       models.GeoEventEnter,
		OccurredAt: time.Now().Add(-time.Hour),
	}

	// Репозиторий опрашивается ровно один раз на пару
	repoMock.EXPECT().LastEvent(ctx, "user-1", fenceID).Return(lastEnter, nil).Times(1)

	// Точка внутри при последнем enter — перехода нет
	event, err := detector.Detect(ctx, sampleAt("user-1", time.Now()), fenceID, true)
	require.NoError(t, err)
	assert.Nil(t, event)

	// Точка снаружи при последнем enter — exit, репозиторий больше не трогаем
	event, err = detector.Detect(ctx, sampleAt("user-1", time.Now()), fenceID, false)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, models.GeoEventExit, event.Type)
}

func TestDetect_AlternatesWithinBatch(t *testing.T) {
	detector, repoMock := newTestDetector(t)
	ctx := context.Background()
	fenceID := uuid.New()
	base := time.Now()

	repoMock.EXPECT().LastEvent(ctx, "user-1", fenceID).Return(nil, nil).Times(1)

	// enter -> exit -> enter, каждый переход подтверждаем
	steps := []struct {
		inside   bool
		expected models.GeoEventType
	}{
		{true, models.GeoEventEnter},
		{false, models.GeoEventExit},
		{true, models.GeoEventEnter},
	}

	for i, step := range steps {
		event, err := detector.Detect(ctx, sampleAt("user-1", base.Add(time.Duration(i)*time.Minute)), fenceID, step.inside)
		require.NoError(t, err)
		require.NotNil(t, event, "step %d", i)
		assert.Equal(t, step.expected, event.Type, "step %d", i)
		detector.Commit(event)
	}
}

func TestDetect_WithoutCommit_StateDoesNotAdvance(t *testing.T) {
	detector, repoMock := newTestDetector(t)
	ctx := context.Background()
	fenceID := uuid.New()

	repoMock.EXPECT().LastEvent(ctx, "user-1", fenceID).Return(nil, nil).Times(1)

	// Первый enter не подтвержден (например, запись в бд упала)
	event, err := detector.Detect(ctx, sampleAt("user-1", time.Now()), fenceID, true)
	require.NoError(t, err)
	require.NotNil(t, event)

	// Следующая точка внутри снова дает enter
	event, err = detector.Detect(ctx, sampleAt("user-1", time.Now()), fenceID, true)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, models.GeoEventEnter, event.Type)
}

func TestDetect_RepositoryError(t *testing.T) {
	detector, repoMock := newTestDetector(t)
	ctx := context.Background()
	fenceID := uuid.New()
	repoErr := fmt.Errorf("бд недоступна")

	repoMock.EXPECT().LastEvent(ctx, "user-1", fenceID).Return(nil, repoErr).Times(1)

	event, err := detector.Detect(ctx, sampleAt("user-1", time.Now()), fenceID, true)

	require.Error(t, err)
	assert.Nil(t, event)
}

func TestDetect_PairsAreIndependent(t *testing.T) {
	detector, repoMock := newTestDetector(t)
	ctx := context.Background()
	fenceA := uuid.New()
	fenceB := uuid.New()

	repoMock.EXPECT().LastEvent(ctx, "user-1", fenceA).Return(nil, nil).Times(1)
	repoMock.EXPECT().LastEvent(ctx, "user-1", fenceB).Return(nil, nil).Times(1)

	// Точка внутри обеих геозон: по enter на каждую пару
	eventA, err := detector.Detect(ctx, sampleAt("user-1", time.Now()), fenceA, true)
	require.NoError(t, err)
	require.NotNil(t, eventA)
	detector.Commit(eventA)

	eventB, err := detector.Detect(ctx, sampleAt("user-1", time.Now()), fenceB, true)
	require.NoError(t, err)
	require.NotNil(t, eventB)
	assert.Equal(t, models.GeoEventEnter, eventB.Type)
}
