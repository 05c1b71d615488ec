package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geo_tracking_system/internal/models"
	"github.com/shenikar/geo_tracking_system/internal/notify"
	notify_mocks "github.com/shenikar/geo_tracking_system/internal/notify/mocks"
	"github.com/shenikar/geo_tracking_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type trackingMocks struct {
	tracks     *mocks.MockTrackRepository
	fences     *mocks.MockGeofenceRepository
	live       *mocks.MockLiveCache
	attendance *mocks.MockAttendanceService
	publisher  *notify_mocks.MockEventPublisher
}

// newTestTrackingService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestTrackingService(t *testing.T) (TrackingService, trackingMocks) {
	ctrl := gomock.NewController(t)
	m := trackingMocks{
		tracks:     mocks.NewMockTrackRepository(ctrl),
		fences:     mocks.NewMockGeofenceRepository(ctrl),
		live:       mocks.NewMockLiveCache(ctrl),
		attendance: mocks.NewMockAttendanceService(ctrl),
		publisher:  notify_mocks.NewMockEventPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewTrackingService(m.tracks, m.fences, m.live, m.attendance, m.publisher, logger)
	return service, m
}

func validPoint(ts string) models.SamplePayload {
	return models.SamplePayload{
		Latitude:  f64(55.75),
		Longitude: f64(37.61),
		Timestamp: ts,
	}
}

func TestSubmitBatch_PartialSuccess(t *testing.T) {
	service, m := newTestTrackingService(t)
	ctx := context.Background()

	points := []models.SamplePayload{
		validPoint("2025-06-01T10:00:00Z"),
		validPoint("2025-06-01T10:01:00Z"),
		{Latitude: f64(200), Longitude: f64(37.61), Timestamp: "2025-06-01T10:02:00Z"}, // широта вне диапазона
		validPoint("2025-06-01T10:03:00Z"),
		validPoint("2025-06-01T10:04:00Z"),
	}

	m.fences.EXPECT().ActiveForUser(ctx, "user-1").Return(nil, nil).Times(1)
	m.tracks.EXPECT().SaveSample(ctx, gomock.Any()).Return(nil).Times(4)
	m.live.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(4)

	result, err := service.SubmitBatch(ctx, "user-1", nil, points)

	require.NoError(t, err)
	assert.Equal(t, 4, result.Accepted)
	require.Len(t, result.Rejected, 1)
	assert.Equal(t, 2, result.Rejected[0].Index)
	assert.Contains(t, result.Rejected[0].Reason, "out of range")
	assert.Empty(t, result.Errors)
}

func TestSubmitBatch_ProcessesPointsInTimestampOrder(t *testing.T) {
	service, m := newTestTrackingService(t)
	ctx := context.Background()

	// Точки приходят в обратном порядке
	points := []models.SamplePayload{
		validPoint("2025-06-01T10:02:00Z"),
		validPoint("2025-06-01T10:00:00Z"),
		validPoint("2025-06-01T10:01:00Z"),
	}

	m.fences.EXPECT().ActiveForUser(ctx, "user-1").Return(nil, nil).Times(1)

	var saved []time.Time
	m.tracks.EXPECT().SaveSample(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, sample *models.LocationSample) error {
			saved = append(saved, sample.Timestamp)
			return nil
		}).Times(3)
	m.live.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(3)

	_, err := service.SubmitBatch(ctx, "user-1", nil, points)

	require.NoError(t, err)
	require.Len(t, saved, 3)
	assert.True(t, saved[0].Before(saved[1]))
	assert.True(t, saved[1].Before(saved[2]))
}

func TestSubmitBatch_GeofenceLookupFails_PointsStillAccepted(t *testing.T) {
	service, m := newTestTrackingService(t)
	ctx := context.Background()

	// Отказ хранилища геозон деградирует до обработки без проверок
	m.fences.EXPECT().ActiveForUser(ctx, "user-1").Return(nil, fmt.Errorf("бд недоступна")).Times(1)
	m.tracks.EXPECT().SaveSample(ctx, gomock.Any()).Return(nil).Times(1)
	m.tracks.EXPECT().LastEvent(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.live.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)

	result, err := service.SubmitBatch(ctx, "user-1", nil, []models.SamplePayload{validPoint("2025-06-01T10:00:00Z")})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Accepted)
	assert.Empty(t, result.Errors)
}

func TestSubmitBatch_EnterEvent_FullPipeline(t *testing.T) {
	service, m := newTestTrackingService(t)
	ctx := context.Background()
	fenceID := uuid.New()
	fence := &models.Geofence{
		ID:              fenceID,
		Name:            "Склад",
		Kind:            models.GeofenceCircle,
		CenterLatitude:  55.75,
		CenterLongitude: 37.61,
		RadiusMeters:    100,
		AutoClockIn:     true,
		IsActive:        true,
	}

	m.fences.EXPECT().ActiveForUser(ctx, "user-1").Return([]*models.Geofence{fence}, nil).Times(1)
	m.tracks.EXPECT().SaveSample(ctx, gomock.Any()).Return(nil).Times(1)
	m.tracks.EXPECT().LastEvent(ctx, "user-1", fenceID).Return(nil, nil).Times(1)
	m.tracks.EXPECT().SaveEvent(ctx, gomock.Any()).
		Do(func(_ context.Context, event *models.GeoEvent) {
			assert.Equal(t, models.GeoEventEnter, event.Type)
			assert.Equal(t, fenceID, event.GeofenceID)
		}).Return(nil).Times(1)

	// Авто-отметка прихода
	m.attendance.EXPECT().HasOpenSession(ctx, "user-1").Return(false, nil).Times(1)
	m.attendance.EXPECT().OpenSession(ctx, "user-1", fenceID).Return(nil).Times(1)

	// Уведомление уходит в очередь
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, n notify.EventNotification) {
			assert.Equal(t, models.GeoEventEnter, n.Type)
			assert.Equal(t, "Склад", n.GeofenceName)
		}).Return(nil).Times(1)

	m.live.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)

	result, err := service.SubmitBatch(ctx, "user-1", nil, []models.SamplePayload{validPoint("2025-06-01T10:00:00Z")})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Accepted)
	assert.Empty(t, result.Errors)
}

func TestSubmitBatch_PointOutsideFence_NoEvent(t *testing.T) {
	service, m := newTestTrackingService(t)
	ctx := context.Background()
	fenceID := uuid.New()
	fence := &models.Geofence{
		ID:              fenceID,
		Kind:            models.GeofenceCircle,
		CenterLatitude:  0,
		CenterLongitude: 0,
		RadiusMeters:    100,
		IsActive:        true,
	}

	m.fences.EXPECT().ActiveForUser(ctx, "user-1").Return([]*models.Geofence{fence}, nil).Times(1)
	m.tracks.EXPECT().SaveSample(ctx, gomock.Any()).Return(nil).Times(1)
	m.tracks.EXPECT().LastEvent(ctx, "user-1", fenceID).Return(nil, nil).Times(1)
	m.tracks.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).Times(0)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
	m.live.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)

	result, err := service.SubmitBatch(ctx, "user-1", nil, []models.SamplePayload{validPoint("2025-06-01T10:00:00Z")})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Accepted)
}

func TestSubmitBatch_SaveSampleFails_PointReportedInErrors(t *testing.T) {
	service, m := newTestTrackingService(t)
	ctx := context.Background()

	m.fences.EXPECT().ActiveForUser(ctx, "user-1").Return(nil, nil).Times(1)
	m.tracks.EXPECT().SaveSample(ctx, gomock.Any()).Return(fmt.Errorf("запись упала")).Times(1)
	m.tracks.EXPECT().SaveSample(ctx, gomock.Any()).Return(nil).Times(1)
	m.live.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)

	points := []models.SamplePayload{
		validPoint("2025-06-01T10:00:00Z"),
		validPoint("2025-06-01T10:01:00Z"),
	}
	result, err := service.SubmitBatch(ctx, "user-1", nil, points)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Accepted)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 0, result.Errors[0].Index)
	assert.Contains(t, result.Errors[0].Error, "запись упала")
}

func TestSubmitBatch_SaveEventFails_EffectsSkippedButPointKept(t *testing.T) {
	service, m := newTestTrackingService(t)
	ctx := context.Background()
	fenceID := uuid.New()
	fence := &models.Geofence{
		ID:              fenceID,
		Kind:            models.GeofenceCircle,
		CenterLatitude:  55.75,
		CenterLongitude: 37.61,
		RadiusMeters:    100,
		AutoClockIn:     true,
		IsActive:        true,
	}

	m.fences.EXPECT().ActiveForUser(ctx, "user-1").Return([]*models.Geofence{fence}, nil).Times(1)
	m.tracks.EXPECT().SaveSample(ctx, gomock.Any()).Return(nil).Times(1)
	m.tracks.EXPECT().LastEvent(ctx, "user-1", fenceID).Return(nil, nil).Times(1)
	m.tracks.EXPECT().SaveEvent(ctx, gomock.Any()).Return(fmt.Errorf("запись события упала")).Times(1)

	// Эффекты и уведомления не запускаются без записанного события
	m.attendance.EXPECT().HasOpenSession(gomock.Any(), gomock.Any()).Times(0)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
	m.live.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)

	result, err := service.SubmitBatch(ctx, "user-1", nil, []models.SamplePayload{validPoint("2025-06-01T10:00:00Z")})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Accepted)
	require.Len(t, result.Errors, 1)
}

func TestLivePositions_Success(t *testing.T) {
	service, m := newTestTrackingService(t)
	ctx := context.Background()
	expected := []models.LivePosition{
		{UserID: "user-1", AgeSeconds: 12},
	}

	m.live.EXPECT().Snapshot(ctx, 5*time.Minute).Return(expected, nil).Times(1)

	positions, err := service.LivePositions(ctx, 5*time.Minute)

	require.NoError(t, err)
	assert.Equal(t, expected, positions)
}

func TestLivePositions_CacheError(t *testing.T) {
	service, m := newTestTrackingService(t)
	ctx := context.Background()

	m.live.EXPECT().Snapshot(ctx, 5*time.Minute).Return(nil, fmt.Errorf("redis недоступен")).Times(1)

	positions, err := service.LivePositions(ctx, 5*time.Minute)

	require.Error(t, err)
	assert.Nil(t, positions)
	assert.ErrorContains(t, err, "could not read live positions")
}

func TestRouteHistory_Success(t *testing.T) {
	service, m := newTestTrackingService(t)
	ctx := context.Background()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	points := []*models.LocationSample{
		{UserID: "user-1", Latitude: 55.0, Longitude: 37.0, Timestamp: from},
		{UserID: "user-1", Latitude: 55.001, Longitude: 37.0, Timestamp: from.Add(time.Minute)},
	}

	m.tracks.EXPECT().SamplesByRange(ctx, "user-1", from, to, nil).Return(points, nil).Times(1)

	history, err := service.RouteHistory(ctx, "user-1", from, to, nil)

	require.NoError(t, err)
	assert.Len(t, history.Points, 2)
	assert.Equal(t, 2, history.Stats.PointCount)
	assert.Greater(t, history.Stats.TotalDistanceMeters, 0.0)
}

func TestDwellSummary_Success(t *testing.T) {
	service, m := newTestTrackingService(t)
	ctx := context.Background()
	fenceID := uuid.New()
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	events := []*models.GeoEvent{
		{UserID: "user-1", GeofenceID: fenceID, Type: models.GeoEventEnter, OccurredAt: base},
		{UserID: "user-1", GeofenceID: fenceID, Type: models.GeoEventExit, OccurredAt: base.Add(600 * time.Second)},
	}

	m.tracks.EXPECT().EventsByFilter(ctx, "user-1", nil, nil, nil).Return(events, nil).Times(1)

	stats, err := service.DwellSummary(ctx, "user-1", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.SampleCount)
	assert.Equal(t, 600.0, stats.TotalDwellSeconds)
}

func TestExportTrack_CSV(t *testing.T) {
	service, m := newTestTrackingService(t)
	ctx := context.Background()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	m.tracks.EXPECT().SamplesByRange(ctx, "user-1", from, to, nil).Return([]*models.LocationSample{
		{UserID: "user-1", Latitude: 55.75, Longitude: 37.61, Timestamp: from, Source: "mobile"},
	}, nil).Times(1)

	data, contentType, err := service.ExportTrack(ctx, "user-1", from, to, "csv")

	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Contains(t, string(data), "timestamp,latitude,longitude")
}

func TestExportTrack_UnsupportedFormat(t *testing.T) {
	service, m := newTestTrackingService(t)
	ctx := context.Background()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	m.tracks.EXPECT().SamplesByRange(ctx, "user-1", from, to, nil).Return(nil, nil).Times(1)

	_, _, err := service.ExportTrack(ctx, "user-1", from, to, "kml")

	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported export format")
}
