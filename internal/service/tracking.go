package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geo_tracking_system/internal/export"
	"github.com/shenikar/geo_tracking_system/internal/models"
	"github.com/shenikar/geo_tracking_system/internal/notify"
	"github.com/shenikar/geo_tracking_system/pkg/geo"
	"github.com/sirupsen/logrus"
)

// GeofenceRepository определяет контракт для работы с бд геозон
type GeofenceRepository interface {
	Create(ctx context.Context, fence *models.Geofence) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Geofence, error)
	Update(ctx context.Context, fence *models.Geofence) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	ListGeofences(ctx context.Context, page, pageSize int) ([]*models.Geofence, error)
	ActiveForUser(ctx context.Context, userID string) ([]*models.Geofence, error)
	GetGeofenceFromCache(ctx context.Context, id uuid.UUID) (*models.Geofence, error)
	SetGeofenceCache(ctx context.Context, fence *models.Geofence) error
	InvalidateGeofenceCache(ctx context.Context, id uuid.UUID) error
}

// TrackRepository определяет контракт хранилища точек и событий
type TrackRepository interface {
	SaveSample(ctx context.Context, sample *models.LocationSample) error
	SamplesByRange(ctx context.Context, userID string, from, to time.Time, sessionID *string) ([]*models.LocationSample, error)
	SaveEvent(ctx context.Context, event *models.GeoEvent) error
	LastEvent(ctx context.Context, userID string, geofenceID uuid.UUID) (*models.GeoEvent, error)
	EventsByFilter(ctx context.Context, userID string, from, to *time.Time, geofenceID *uuid.UUID) ([]*models.GeoEvent, error)
}

// LiveCache — индекс последних позиций пользователей. Update обязан
// игнорировать точки старее уже сохраненной (защита от опоздавших точек).
type LiveCache interface {
	Update(ctx context.Context, sample models.LocationSample) error
	Snapshot(ctx context.Context, maxAge time.Duration) ([]models.LivePosition, error)
}

// TrackingService определяет контракт конвейера обработки GPS-точек
type TrackingService interface {
	SubmitBatch(ctx context.Context, userID string, sessionID *string, points []models.SamplePayload) (*models.BatchResult, error)
	LivePositions(ctx context.Context, maxAge time.Duration) ([]models.LivePosition, error)
	RouteHistory(ctx context.Context, userID string, from, to time.Time, sessionID *string) (*models.RouteHistory, error)
	GeofenceEvents(ctx context.Context, userID string, from, to *time.Time, geofenceID *uuid.UUID) ([]*models.GeoEvent, error)
	DwellSummary(ctx context.Context, userID string, from, to *time.Time) (models.DwellStats, error)
	ExportTrack(ctx context.Context, userID string, from, to time.Time, format string) ([]byte, string, error)
}

type trackingService struct {
	tracks     TrackRepository
	fences     GeofenceRepository
	live       LiveCache
	dispatcher *SideEffectDispatcher
	publisher  notify.EventPublisher
	logger     *logrus.Logger

	// userLocks сериализует батчи одного пользователя: корректность
	// детектора зависит от полного порядка точек в паре (user, geofence)
	userLocks sync.Map
}

func NewTrackingService(tracks TrackRepository, fences GeofenceRepository, live LiveCache, attendance AttendanceService, publisher notify.EventPublisher, logger *logrus.Logger) TrackingService {
	return &trackingService{
		tracks:     tracks,
		fences:     fences,
		live:       live,
		dispatcher: NewSideEffectDispatcher(attendance, logger),
		publisher:  publisher,
		logger:     logger,
	}
}

func (s *trackingService) userLock(userID string) *sync.Mutex {
	v, _ := s.userLocks.LoadOrStore(userID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// SubmitBatch прогоняет батч точек одного пользователя через конвейер:
// валидация -> сохранение -> проверка геозон -> события -> авто-отметки ->
// обновление живой позиции. Плохая точка отклоняется индивидуально и
// никогда не валит батч целиком.
func (s *trackingService) SubmitBatch(ctx context.Context, userID string, sessionID *string, points []models.SamplePayload) (*models.BatchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "tracking",
		"method":  "SubmitBatch",
		"user_id": userID,
		"points":  len(points),
	})
	log.Info("Processing location batch")

	result := &models.BatchResult{
		Rejected: make([]models.RejectedPoint, 0),
		Errors:   make([]models.FailedPoint, 0),
	}

	type acceptedPoint struct {
		index  int
		sample models.LocationSample
	}
	accepted := make([]acceptedPoint, 0, len(points))
	for i, p := range points {
		res := ValidateSample(userID, sessionID, p)
		if !res.Accepted {
			result.Rejected = append(result.Rejected, models.RejectedPoint{Index: i, Reason: res.Reason})
			continue
		}
		accepted = append(accepted, acceptedPoint{index: i, sample: res.Sample})
	}

	// Точки обрабатываются строго по возрастанию времени, иначе детектор
	// может выдумать или пропустить переход
	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].sample.Timestamp.Before(accepted[j].sample.Timestamp)
	})

	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	fences := s.activeGeofences(ctx, userID)
	detector := NewEventDetector(s.tracks)

	for _, ap := range accepted {
		sample := ap.sample
		if err := s.tracks.SaveSample(ctx, &sample); err != nil {
			log.WithError(err).Error("Failed to persist location sample")
			result.Errors = append(result.Errors, models.FailedPoint{Index: ap.index, Error: err.Error()})
			continue
		}
		result.Accepted++

		for _, fence := range fences {
			inside := containsSample(sample, fence)

			event, err := detector.Detect(ctx, sample, fence.ID, inside)
			if err != nil {
				log.WithError(err).WithField("geofence_id", fence.ID).Error("Failed to resolve last geofence event")
				result.Errors = append(result.Errors, models.FailedPoint{Index: ap.index, Error: err.Error()})
				continue
			}
			if event == nil {
				continue
			}

			if err := s.tracks.SaveEvent(ctx, event); err != nil {
				log.WithError(err).WithField("geofence_id", fence.ID).Error("Failed to persist geofence event")
				result.Errors = append(result.Errors, models.FailedPoint{Index: ap.index, Error: err.Error()})
				continue
			}
			detector.Commit(event)

			// Побочный эффект и уведомление не откатывают записанное событие
			if res := s.dispatcher.Dispatch(ctx, event, fence); res.Err != nil {
				log.WithError(res.Err).Warn("Attendance side effect failed, event kept")
			}
			s.publishEvent(ctx, event, fence)
		}

		if err := s.live.Update(ctx, sample); err != nil {
			log.WithError(err).Warn("Failed to update live position cache")
		}
	}

	log.WithFields(logrus.Fields{
		"accepted": result.Accepted,
		"rejected": len(result.Rejected),
		"errors":   len(result.Errors),
	}).Info("Location batch processed")
	return result, nil
}

// activeGeofences возвращает активные геозоны пользователя; при отказе
// конфигурационного хранилища деградирует до пустого списка (fail-open),
// чтобы сбой не блокировал прием точек
func (s *trackingService) activeGeofences(ctx context.Context, userID string) []*models.Geofence {
	fences, err := s.fences.ActiveForUser(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to load active geofences, continuing without containment checks")
		return nil
	}
	return fences
}

func (s *trackingService) publishEvent(ctx context.Context, event *models.GeoEvent, fence *models.Geofence) {
	notification := notify.EventNotification{
		UserID:       event.UserID,
		GeofenceID:   event.GeofenceID,
		GeofenceName: fence.Name,
		Type:         event.Type,
		Latitude:     event.Latitude,
		Longitude:    event.Longitude,
		OccurredAt:   event.OccurredAt,
		SessionID:    event.SessionID,
	}
	if err := s.publisher.Publish(ctx, notification); err != nil {
		s.logger.WithError(err).Error("Failed to publish geofence event notification")
	}
}

// containsSample проверяет попадание точки в геозону. Неизвестный тип
// геозоны и вырожденная геометрия трактуются как "не внутри".
func containsSample(sample models.LocationSample, fence *models.Geofence) bool {
	p := geo.Point{Lat: sample.Latitude, Lon: sample.Longitude}
	switch fence.Kind {
	case models.GeofenceCircle:
		return geo.InCircle(p, fence.CenterLatitude, fence.CenterLongitude, fence.RadiusMeters)
	case models.GeofencePolygon:
		ring := make([]geo.Point, len(fence.Ring))
		for i, v := range fence.Ring {
			ring[i] = geo.Point{Lat: v.Latitude, Lon: v.Longitude}
		}
		return geo.InPolygon(p, ring)
	}
	return false
}

// LivePositions возвращает позиции не старше maxAge
func (s *trackingService) LivePositions(ctx context.Context, maxAge time.Duration) ([]models.LivePosition, error) {
	positions, err := s.live.Snapshot(ctx, maxAge)
	if err != nil {
		return nil, fmt.Errorf("service: could not read live positions: %w", err)
	}
	return positions, nil
}

// RouteHistory возвращает точки маршрута за период вместе со статистикой
func (s *trackingService) RouteHistory(ctx context.Context, userID string, from, to time.Time, sessionID *string) (*models.RouteHistory, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "tracking",
		"method":  "RouteHistory",
		"user_id": userID,
	})

	points, err := s.tracks.SamplesByRange(ctx, userID, from, to, sessionID)
	if err != nil {
		log.WithError(err).Error("Failed to load route points")
		return nil, fmt.Errorf("service: could not load route history: %w", err)
	}

	return &models.RouteHistory{
		Points: points,
		Stats:  ComputeRouteStats(points),
	}, nil
}

// GeofenceEvents возвращает события переходов по фильтру
func (s *trackingService) GeofenceEvents(ctx context.Context, userID string, from, to *time.Time, geofenceID *uuid.UUID) ([]*models.GeoEvent, error) {
	events, err := s.tracks.EventsByFilter(ctx, userID, from, to, geofenceID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list geofence events: %w", err)
	}
	return events, nil
}

// DwellSummary считает статистику пребывания по событиям за период
func (s *trackingService) DwellSummary(ctx context.Context, userID string, from, to *time.Time) (models.DwellStats, error) {
	events, err := s.tracks.EventsByFilter(ctx, userID, from, to, nil)
	if err != nil {
		return models.DwellStats{}, fmt.Errorf("service: could not compute dwell summary: %w", err)
	}
	return ComputeDwellStats(events), nil
}

// ExportTrack сериализует точки за период в запрошенный формат.
// Возвращает данные и content type.
func (s *trackingService) ExportTrack(ctx context.Context, userID string, from, to time.Time, format string) ([]byte, string, error) {
	points, err := s.tracks.SamplesByRange(ctx, userID, from, to, nil)
	if err != nil {
		return nil, "", fmt.Errorf("service: could not load points for export: %w", err)
	}

	switch format {
	case "raw":
		data, err := export.JSON(points)
		if err != nil {
			return nil, "", fmt.Errorf("service: raw export failed: %w", err)
		}
		return data, "application/json", nil
	case "csv":
		data, err := export.CSV(points)
		if err != nil {
			return nil, "", fmt.Errorf("service: csv export failed: %w", err)
		}
		return data, "text/csv", nil
	case "gpx":
		data, err := export.GPX(points)
		if err != nil {
			return nil, "", fmt.Errorf("service: gpx export failed: %w", err)
		}
		return data, "application/gpx+xml", nil
	}
	return nil, "", fmt.Errorf("service: unsupported export format %q", format)
}
