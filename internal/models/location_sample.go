package models

import (
	"time"
)

// LocationSample — одна принятая GPS-точка пользователя.
// После прохождения валидации запись неизменяема и хранится append-only.
type LocationSample struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
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

// SamplePayload — сырая точка из батча до валидации. Указатели отличают
// отсутствующее поле от нулевого значения.
type SamplePayload struct {
	Latitude     *float64
	Longitude    *float64
	Timestamp    string
	Accuracy     *float64
	Speed        *float64
	Heading      *float64
	Altitude     *float64
	BatteryLevel *float64
	Source       string
	IsMoving     bool
}

// LivePosition — последняя известная позиция пользователя
type LivePosition struct {
	UserID     string         `json:"user_id"`
	Sample     LocationSample `json:"sample"`
	AgeSeconds float64        `json:"age_seconds"`
}
