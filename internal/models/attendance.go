package models

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceSession — рабочая смена сотрудника.
// Открытая смена — запись с clock_out IS NULL; у пользователя
// одновременно может быть не более одной открытой смены.
type AttendanceSession struct {
	ID         uuid.UUID  `json:"id"`
	UserID     string     `json:"user_id"`
	GeofenceID *uuid.UUID `json:"geofence_id,omitempty"`
	ClockIn    time.Time  `json:"clock_in"`
	ClockOut   *time.Time `json:"clock_out,omitempty"`
	Source     string     `json:"source"`
}
