package models

import (
	"time"

	"github.com/google/uuid"
)

// GeoEventType — тип перехода границы геозоны
type GeoEventType string

const (
	GeoEventEnter GeoEventType = "enter"
	GeoEventExit  GeoEventType = "exit"
)

// GeoEvent — зафиксированный переход пользователя через границу геозоны.
// Записи append-only; для пары (user_id, geofence_id) события по времени
// строго чередуются enter/exit.
type GeoEvent struct {
	ID         int64        `json:"id"`
	UserID     string       `json:"user_id"`
	GeofenceID uuid.UUID    `json:"geofence_id"`
	SessionID  *string      `json:"session_id,omitempty"`
	Type       GeoEventType `json:"type"`
	OccurredAt time.Time    `json:"occurred_at"`
	Latitude   float64      `json:"latitude"`
	Longitude  float64      `json:"longitude"`
	Accuracy   *float64     `json:"accuracy,omitempty"`
}
