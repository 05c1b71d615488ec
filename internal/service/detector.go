package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shenikar/geo_tracking_system/internal/models"
)

// EventDetector — машина состояний enter/exit для пар (пользователь, геозона).
// Последнее событие пары загружается из репозитория один раз и дальше
// отслеживается локально, поэтому переходы внутри одного батча корректно
// цепляются друг за друга. Экземпляр живет в пределах одного батча
// и не потокобезопасен.
type EventDetector struct {
	repo TrackRepository
	// last хранит последнее подтвержденное событие пары; nil — событий не было
	last map[string]*models.GeoEvent
}

func NewEventDetector(repo TrackRepository) *EventDetector {
	return &EventDetector{
		repo: repo,
		last: make(map[string]*models.GeoEvent),
	}
}

func pairKey(userID string, geofenceID uuid.UUID) string {
	return userID + "|" + geofenceID.String()
}

// Detect возвращает событие перехода для новой точки или nil, если состояние
// пары не изменилось. Возвращенное событие еще не учтено: после успешного
// сохранения его нужно подтвердить через Commit, иначе детектор останется
// в прежнем состоянии.
//
// Правила перехода:
//   - событий не было и точка внутри  -> enter
//   - последнее exit и точка внутри   -> enter
//   - последнее enter и точка снаружи -> exit
//   - иначе ничего
func (d *EventDetector) Detect(ctx context.Context, sample models.LocationSample, geofenceID uuid.UUID, inside bool) (*models.GeoEvent, error) {
	key := pairKey(sample.UserID, geofenceID)

	last, seen := d.last[key]
	if !seen {
		var err error
		last, err = d.repo.LastEvent(ctx, sample.UserID, geofenceID)
		if err != nil {
			return nil, err
		}
		d.last[key] = last
	}

	var eventType models.GeoEventType
	switch {
	case inside && (last == nil || last.Type == models.GeoEventExit):
		eventType = models.GeoEventEnter
	case !inside && last != nil && last.Type == models.GeoEventEnter:
		eventType = models.GeoEventExit
	default:
		return nil, nil
	}

	return &models.GeoEvent{
		UserID:     sample.UserID,
		GeofenceID: geofenceID,
		SessionID:  sample.SessionID,
		Type:       eventType,
		OccurredAt: sample.Timestamp,
		Latitude:   sample.Latitude,
		Longitude:  sample.Longitude,
		Accuracy:   sample.Accuracy,
	}, nil
}

// Commit фиксирует сохраненное событие как последнее для его пары
func (d *EventDetector) Commit(event *models.GeoEvent) {
	d.last[pairKey(event.UserID, event.GeofenceID)] = event
}
