package v1

import (
	"github.com/shenikar/geo_tracking_system/internal/models"
)

// DTOToSamplePayloads преобразует точки запроса в полезную нагрузку конвейера
func DTOToSamplePayloads(points []SamplePointRequest) []models.SamplePayload {
	payloads := make([]models.SamplePayload, len(points))
	for i, p := range points {
		payloads[i] = models.SamplePayload{
			Latitude:     p.Latitude,
			Longitude:    p.Longitude,
			Timestamp:    p.Timestamp,
			Accuracy:     p.Accuracy,
			Speed:        p.Speed,
			Heading:      p.Heading,
			Altitude:     p.Altitude,
			BatteryLevel: p.BatteryLevel,
			Source:       p.Source,
			IsMoving:     p.IsMoving,
		}
	}
	return payloads
}

// BatchResultToResponse преобразует итог обработки батча в DTO
func BatchResultToResponse(result *models.BatchResult) BatchResponse {
	resp := BatchResponse{
		Accepted: result.Accepted,
		Rejected: make([]RejectedPointResponse, len(result.Rejected)),
		Errors:   make([]FailedPointResponse, len(result.Errors)),
	}
	for i, r := range result.Rejected {
		resp.Rejected[i] = RejectedPointResponse{Index: r.Index, Reason: r.Reason}
	}
	for i, e := range result.Errors {
		resp.Errors[i] = FailedPointResponse{Index: e.Index, Error: e.Error}
	}
	return resp
}

// SampleToTrackPointResponse преобразует доменную точку в DTO
func SampleToTrackPointResponse(sample models.LocationSample) TrackPointResponse {
	return TrackPointResponse{
		Timestamp:    sample.Timestamp,
		Latitude:     sample.Latitude,
		Longitude:    sample.Longitude,
		Accuracy:     sample.Accuracy,
		Speed:        sample.Speed,
		Heading:      sample.Heading,
		Altitude:     sample.Altitude,
		BatteryLevel: sample.BatteryLevel,
		Source:       sample.Source,
		IsMoving:     sample.IsMoving,
		SessionID:    sample.SessionID,
	}
}

// LivePositionsToResponses преобразует слайс позиций в DTO
func LivePositionsToResponses(positions []models.LivePosition) []LivePositionResponse {
	responses := make([]LivePositionResponse, len(positions))
	for i, pos := range positions {
		responses[i] = LivePositionResponse{
			UserID:     pos.UserID,
			Point:      SampleToTrackPointResponse(pos.Sample),
			AgeSeconds: pos.AgeSeconds,
		}
	}
	return responses
}

// RouteHistoryToResponse преобразует маршрут со статистикой в DTO
func RouteHistoryToResponse(history *models.RouteHistory) RouteHistoryResponse {
	resp := RouteHistoryResponse{
		Points: make([]TrackPointResponse, len(history.Points)),
		Stats: RouteStatsResponse{
			PointCount:           history.Stats.PointCount,
			TotalDistanceMeters:  history.Stats.TotalDistanceMeters,
			TotalDurationSeconds: history.Stats.TotalDurationSeconds,
			AverageSpeedKmh:      history.Stats.AverageSpeedKmh,
			MaxSpeed:             history.Stats.MaxSpeed,
			MovingTimeSeconds:    history.Stats.MovingTimeSeconds,
		},
	}
	for i, p := range history.Points {
		resp.Points[i] = SampleToTrackPointResponse(*p)
	}
	return resp
}

// EventsToResponses преобразует слайс событий в DTO
func EventsToResponses(events []*models.GeoEvent) []GeoEventResponse {
	responses := make([]GeoEventResponse, len(events))
	for i, ev := range events {
		responses[i] = GeoEventResponse{
			ID:         ev.ID,
			UserID:     ev.UserID,
			GeofenceID: ev.GeofenceID,
			SessionID:  ev.SessionID,
			Type:       string(ev.Type),
			OccurredAt: ev.OccurredAt,
			Latitude:   ev.Latitude,
			Longitude:  ev.Longitude,
			Accuracy:   ev.Accuracy,
		}
	}
	return responses
}

// DwellStatsToResponse преобразует статистику пребывания в DTO
func DwellStatsToResponse(stats models.DwellStats) DwellStatsResponse {
	return DwellStatsResponse{
		SampleCount:         stats.SampleCount,
		TotalDwellSeconds:   stats.TotalDwellSeconds,
		AverageDwellSeconds: stats.AverageDwellSeconds,
	}
}

func ringToModel(ring []LatLngRequest) []models.LatLng {
	if len(ring) == 0 {
		return nil
	}
	out := make([]models.LatLng, len(ring))
	for i, v := range ring {
		out[i] = models.LatLng{Latitude: v.Latitude, Longitude: v.Longitude}
	}
	return out
}

func ringToDTO(ring []models.LatLng) []LatLngRequest {
	if len(ring) == 0 {
		return nil
	}
	out := make([]LatLngRequest, len(ring))
	for i, v := range ring {
		out[i] = LatLngRequest{Latitude: v.Latitude, Longitude: v.Longitude}
	}
	return out
}

// DTOToGeofenceModel преобразует DTO создания/обновления в доменную модель.
// Используем одну функцию, так как поля совпадают.
func DTOToGeofenceModel(dto any) *models.Geofence {
	switch v := dto.(type) {
	case CreateGeofenceRequest:
		return &models.Geofence{
			OrganizationID:  v.OrganizationID,
			Name:            v.Name,
			Kind:            models.GeofenceKind(v.Kind),
			CenterLatitude:  v.CenterLatitude,
			CenterLongitude: v.CenterLongitude,
			RadiusMeters:    v.RadiusMeters,
			Ring:            ringToModel(v.Ring),
			AutoClockIn:     v.AutoClockIn,
			AutoClockOut:    v.AutoClockOut,
		}
	case UpdateGeofenceRequest:
		return &models.Geofence{
			Name:            v.Name,
			Kind:            models.GeofenceKind(v.Kind),
			CenterLatitude:  v.CenterLatitude,
			CenterLongitude: v.CenterLongitude,
			RadiusMeters:    v.RadiusMeters,
			Ring:            ringToModel(v.Ring),
			AutoClockIn:     v.AutoClockIn,
			AutoClockOut:    v.AutoClockOut,
			IsActive:        v.IsActive,
		}
	}
	return nil
}

// ModelToGeofenceResponse преобразует доменную модель в DTO для ответа
func ModelToGeofenceResponse(model *models.Geofence) *GeofenceResponse {
	return &GeofenceResponse{
		ID:              model.ID,
		OrganizationID:  model.OrganizationID,
		Name:            model.Name,
		Kind:            string(model.Kind),
		CenterLatitude:  model.CenterLatitude,
		CenterLongitude: model.CenterLongitude,
		RadiusMeters:    model.RadiusMeters,
		Ring:            ringToDTO(model.Ring),
		AutoClockIn:     model.AutoClockIn,
		AutoClockOut:    model.AutoClockOut,
		IsActive:        model.IsActive,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

// ModelsToGeofenceResponses преобразует слайс моделей в слайс DTO
func ModelsToGeofenceResponses(fences []*models.Geofence) []*GeofenceResponse {
	responses := make([]*GeofenceResponse, len(fences))
	for i, model := range fences {
		responses[i] = ModelToGeofenceResponse(model)
	}
	return responses
}
