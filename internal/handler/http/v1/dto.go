package v1

import (
	"time"

	"github.com/google/uuid"
)

// SamplePointRequest — сырая точка батча. Валидацию полей выполняет
// конвейер поточечно, поэтому здесь нет обязательных тегов.
// @Description Сырая GPS-точка батча
type SamplePointRequest struct {
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Timestamp    string   `json:"timestamp"`
	Accuracy     *float64 `json:"accuracy,omitempty"`
	Speed        *float64 `json:"speed,omitempty"`
	Heading      *float64 `json:"heading,omitempty"`
	Altitude     *float64 `json:"altitude,omitempty"`
	BatteryLevel *float64 `json:"battery_level,omitempty"`
	Source       string   `json:"source,omitempty"`
	IsMoving     bool     `json:"is_moving,omitempty"`
}

// SubmitBatchRequest DTO для приема батча точек
// @Description DTO для приема батча GPS-точек одного пользователя
type SubmitBatchRequest struct {
	UserID    string               `json:"user_id" validate:"required"`
	SessionID *string              `json:"session_id,omitempty"`
	Points    []SamplePointRequest `json:"points" validate:"required,min=1"`
}

// RejectedPointResponse — отклоненная валидатором точка
type RejectedPointResponse struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// FailedPointResponse — точка, не обработанная из-за ошибки
type FailedPointResponse struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// BatchResponse DTO с частичным результатом обработки батча
// @Description Частичный результат обработки батча
type BatchResponse struct {
	Accepted int                     `json:"accepted"`
	Rejected []RejectedPointResponse `json:"rejected"`
	Errors   []FailedPointResponse   `json:"errors"`
}

// TrackPointResponse DTO одной сохраненной точки
type TrackPointResponse struct {
	Timestamp    time.Time `json:"timestamp"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Accuracy     *float64  `json:"accuracy,omitempty"`
	Speed        *float64  `json:"speed,omitempty"`
	Heading      *float64  `json:"heading,omitempty"`
	Altitude     *float64  `json:"altitude,omitempty"`
	BatteryLevel *float64  `json:"battery_level,omitempty"`
	Source       string    `json:"source"`
	IsMoving     bool      `json:"is_moving"`
	SessionID    *string   `json:"session_id,omitempty"`
}

// LivePositionResponse DTO последней позиции пользователя
type LivePositionResponse struct {
	UserID     string             `json:"user_id"`
	Point      TrackPointResponse `json:"point"`
	AgeSeconds float64            `json:"age_seconds"`
}

// RouteStatsResponse DTO статистики маршрута
type RouteStatsResponse struct {
	PointCount           int     `json:"point_count"`
	TotalDistanceMeters  float64 `json:"total_distance_meters"`
	TotalDurationSeconds float64 `json:"total_duration_seconds"`
	AverageSpeedKmh      float64 `json:"average_speed_kmh"`
	MaxSpeed             float64 `json:"max_speed"`
	MovingTimeSeconds    float64 `json:"moving_time_seconds"`
}

// RouteHistoryResponse DTO маршрута за период
type RouteHistoryResponse struct {
	Points []TrackPointResponse `json:"points"`
	Stats  RouteStatsResponse   `json:"stats"`
}

// GeoEventResponse DTO события перехода границы геозоны
type GeoEventResponse struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	GeofenceID uuid.UUID `json:"geofence_id"`
	SessionID  *string   `json:"session_id,omitempty"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   *float64  `json:"accuracy,omitempty"`
}

// DwellStatsResponse DTO статистики пребывания в геозонах
type DwellStatsResponse struct {
	SampleCount         int     `json:"sample_count"`
	TotalDwellSeconds   float64 `json:"total_dwell_seconds"`
	AverageDwellSeconds float64 `json:"average_dwell_seconds"`
}

// LatLngRequest — вершина кольца полигона
type LatLngRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// CreateGeofenceRequest DTO для создания геозоны
// @Description DTO для создания геозоны
type CreateGeofenceRequest struct {
	OrganizationID  uuid.UUID       `json:"organization_id" validate:"required"`
	Name            string          `json:"name" validate:"required,min=2,max=255"`
	Kind            string          `json:"kind" validate:"required,oneof=circle polygon"`
	CenterLatitude  float64         `json:"center_latitude" validate:"omitempty,latitude"`
	CenterLongitude float64         `json:"center_longitude" validate:"omitempty,longitude"`
	RadiusMeters    float64         `json:"radius_meters" validate:"omitempty,gt=0"`
	Ring            []LatLngRequest `json:"ring" validate:"omitempty,min=3,dive"`
	AutoClockIn     bool            `json:"auto_clock_in"`
	AutoClockOut    bool            `json:"auto_clock_out"`
}

// UpdateGeofenceRequest DTO для обновления геозоны
// @Description DTO для обновления геозоны
type UpdateGeofenceRequest struct {
	Name            string          `json:"name" validate:"required,min=2,max=255"`
	Kind            string          `json:"kind" validate:"required,oneof=circle polygon"`
	CenterLatitude  float64         `json:"center_latitude" validate:"omitempty,latitude"`
	CenterLongitude float64         `json:"center_longitude" validate:"omitempty,longitude"`
	RadiusMeters    float64         `json:"radius_meters" validate:"omitempty,gt=0"`
	Ring            []LatLngRequest `json:"ring" validate:"omitempty,min=3,dive"`
	AutoClockIn     bool            `json:"auto_clock_in"`
	AutoClockOut    bool            `json:"auto_clock_out"`
	IsActive        bool            `json:"is_active"`
}

// GeofenceResponse DTO для ответа с информацией о геозоне
// @Description DTO для ответа с информацией о геозоне
type GeofenceResponse struct {
	ID              uuid.UUID       `json:"id"`
	OrganizationID  uuid.UUID       `json:"organization_id"`
	Name            string          `json:"name"`
	Kind            string          `json:"kind"`
	CenterLatitude  float64         `json:"center_latitude"`
	CenterLongitude float64         `json:"center_longitude"`
	RadiusMeters    float64         `json:"radius_meters"`
	Ring            []LatLngRequest `json:"ring,omitempty"`
	AutoClockIn     bool            `json:"auto_clock_in"`
	AutoClockOut    bool            `json:"auto_clock_out"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
