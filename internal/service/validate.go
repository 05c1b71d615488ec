package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shenikar/geo_tracking_system/internal/models"
)

// ValidationResult — результат проверки одной точки: либо принятая
// нормализованная LocationSample, либо причина отклонения
type ValidationResult struct {
	Accepted bool
	Sample   models.LocationSample
	Reason   string
}

func rejected(reason string) ValidationResult {
	return ValidationResult{Reason: reason}
}

// ValidateSample нормализует сырую точку и отклоняет некорректную.
// Функция чистая: не пишет логи и не прерывает обработку соседних точек.
func ValidateSample(userID string, sessionID *string, p models.SamplePayload) ValidationResult {
	if p.Latitude == nil || p.Longitude == nil {
		return rejected("latitude and longitude are required")
	}
	if p.Timestamp == "" {
		return rejected("timestamp is required")
	}
	if *p.Latitude < -90 || *p.Latitude > 90 {
		return rejected(fmt.Sprintf("latitude %v is out of range [-90, 90]", *p.Latitude))
	}
	if *p.Longitude < -180 || *p.Longitude > 180 {
		return rejected(fmt.Sprintf("longitude %v is out of range [-180, 180]", *p.Longitude))
	}

	ts, ok := parseTimestamp(p.Timestamp)
	if !ok {
		return rejected(fmt.Sprintf("timestamp %q is not a valid instant", p.Timestamp))
	}

	source := p.Source
	if source == "" {
		source = "unknown"
	}

	return ValidationResult{
		Accepted: true,
		Sample: models.LocationSample{
			UserID:       userID,
			Timestamp:    ts,
			Latitude:     *p.Latitude,
			Longitude:    *p.Longitude,
			Accuracy:     p.Accuracy,
			Speed:        p.Speed,
			Heading:      p.Heading,
			Altitude:     p.Altitude,
			BatteryLevel: p.BatteryLevel,
			Source:       source,
			IsMoving:     p.IsMoving,
			SessionID:    sessionID,
		},
	}
}

// parseTimestamp принимает RFC3339 или unix-миллисекунды:
// десктопный и мобильный агенты шлют разные форматы
func parseTimestamp(raw string) (time.Time, bool) {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts.UTC(), true
	}
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil && ms > 0 {
		return time.UnixMilli(ms).UTC(), true
	}
	return time.Time{}, false
}
