package models

import (
	"time"

	"github.com/google/uuid"
)

// GeofenceKind — форма геозоны
type GeofenceKind string

const (
	GeofenceCircle  GeofenceKind = "circle"
	GeofencePolygon GeofenceKind = "polygon"
)

// LatLng — вершина кольца полигона
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geofence представляет геозону организации: круг (центр + радиус)
// или полигон (замкнутое кольцо вершин, без отверстий)
type Geofence struct {
	ID              uuid.UUID    `json:"id"`
	OrganizationID  uuid.UUID    `json:"organization_id"`
	Name            string       `json:"name"`
	Kind            GeofenceKind `json:"kind"`
	CenterLatitude  float64      `json:"center_latitude,omitempty"`
	CenterLongitude float64      `json:"center_longitude,omitempty"`
	RadiusMeters    float64      `json:"radius_meters,omitempty"`
	Ring            []LatLng     `json:"ring,omitempty"`
	AutoClockIn     bool         `json:"auto_clock_in"`
	AutoClockOut    bool         `json:"auto_clock_out"`
	IsActive        bool         `json:"is_active"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}
