package service

import (
	"github.com/shenikar/geo_tracking_system/internal/models"
	"github.com/shenikar/geo_tracking_system/pkg/geo"
)

// ComputeRouteStats считает статистику маршрута по точкам, упорядоченным
// по времени. Пустой вход дает нулевую статистику, а не ошибку.
func ComputeRouteStats(points []*models.LocationSample) models.RouteStats {
	stats := models.RouteStats{PointCount: len(points)}
	if len(points) == 0 {
		return stats
	}

	for i, p := range points {
		// Максимальная скорость берется из репортов устройства, не пересчитывается
		if p.Speed != nil && *p.Speed > stats.MaxSpeed {
			stats.MaxSpeed = *p.Speed
		}
		if i == 0 {
			continue
		}
		prev := points[i-1]
		stats.TotalDistanceMeters += geo.Haversine(prev.Latitude, prev.Longitude, p.Latitude, p.Longitude)
		if p.IsMoving {
			stats.MovingTimeSeconds += p.Timestamp.Sub(prev.Timestamp).Seconds()
		}
	}

	stats.TotalDurationSeconds = points[len(points)-1].Timestamp.Sub(points[0].Timestamp).Seconds()
	if stats.TotalDurationSeconds > 0 {
		// метры/секунды -> км/ч
		stats.AverageSpeedKmh = stats.TotalDistanceMeters / stats.TotalDurationSeconds * 3.6
	}
	return stats
}

// ComputeDwellStats считает время пребывания в геозонах: каждый enter
// сопоставляется со следующим exit той же пары (пользователь, геозона).
// Незакрытый enter в хвосте не дает замера.
func ComputeDwellStats(events []*models.GeoEvent) models.DwellStats {
	entered := make(map[string]*models.GeoEvent)

	var stats models.DwellStats
	for _, ev := range events {
		key := pairKey(ev.UserID, ev.GeofenceID)
		switch ev.Type {
		case models.GeoEventEnter:
			entered[key] = ev
		case models.GeoEventExit:
			enter, ok := entered[key]
			if !ok {
				continue
			}
			stats.TotalDwellSeconds += ev.OccurredAt.Sub(enter.OccurredAt).Seconds()
			stats.SampleCount++
			delete(entered, key)
		}
	}

	if stats.SampleCount > 0 {
		stats.AverageDwellSeconds = stats.TotalDwellSeconds / float64(stats.SampleCount)
	}
	return stats
}
