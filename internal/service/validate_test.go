package service

import (
	"testing"
	"time"

	"github.com/shenikar/geo_tracking_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestValidateSample_Success(t *testing.T) {
	sessionID := "shift-1"
	payload := models.SamplePayload{
		Latitude:  f64(55.75),
		Longitude: f64(37.61),
		Timestamp: "2025-06-01T10:00:00Z",
		Accuracy:  f64(5),
		Speed:     f64(1.5),
		Source:    "mobile",
		IsMoving:  true,
	}

	res := ValidateSample("user-1", &sessionID, payload)

	require.True(t, res.Accepted)
	assert.Empty(t, res.Reason)
	assert.Equal(t, "user-1", res.Sample.UserID)
	assert.Equal(t, 55.75, res.Sample.Latitude)
	assert.Equal(t, 37.61, res.Sample.Longitude)
	assert.Equal(t, "mobile", res.Sample.Source)
	assert.True(t, res.Sample.IsMoving)
	assert.Equal(t, &sessionID, res.Sample.SessionID)
	assert.Equal(t, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), res.Sample.Timestamp)
}

func TestValidateSample_UnixMillisTimestamp(t *testing.T) {
	payload := models.SamplePayload{
		Latitude:  f64(10),
		Longitude: f64(20),
		Timestamp: "1748772000000", // 2025-06-01T10:00:00Z в миллисекундах
	}

	res := ValidateSample("user-1", nil, payload)

	require.True(t, res.Accepted)
	assert.Equal(t, int64(1748772000), res.Sample.Timestamp.Unix())
}

func TestValidateSample_DefaultsSourceToUnknown(t *testing.T) {
	payload := models.SamplePayload{
		Latitude:  f64(10),
		Longitude: f64(20),
		Timestamp: "2025-06-01T10:00:00Z",
	}

	res := ValidateSample("user-1", nil, payload)

	require.True(t, res.Accepted)
	assert.Equal(t, "unknown", res.Sample.Source)
}

func TestValidateSample_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		payload models.SamplePayload
		reason  string
	}{
		{
			name:    "отсутствуют координаты",
			payload: models.SamplePayload{Timestamp: "2025-06-01T10:00:00Z"},
			reason:  "latitude and longitude are required",
		},
		{
			name:    "отсутствует долгота",
			payload: models.SamplePayload{Latitude: f64(10), Timestamp: "2025-06-01T10:00:00Z"},
			reason:  "latitude and longitude are required",
		},
		{
			name:    "отсутствует таймстамп",
			payload: models.SamplePayload{Latitude: f64(10), Longitude: f64(20)},
			reason:  "timestamp is required",
		},
		{
			name:    "широта вне диапазона",
			payload: models.SamplePayload{Latitude: f64(200), Longitude: f64(20), Timestamp: "2025-06-01T10:00:00Z"},
			reason:  "out of range [-90, 90]",
		},
		{
			name:    "долгота вне диапазона",
			payload: models.SamplePayload{Latitude: f64(10), Longitude: f64(-200.5), Timestamp: "2025-06-01T10:00:00Z"},
			reason:  "out of range [-180, 180]",
		},
		{
			name:    "нечитаемый таймстамп",
			payload: models.SamplePayload{Latitude: f64(10), Longitude: f64(20), Timestamp: "вчера"},
			reason:  "is not a valid instant",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateSample("user-1", nil, tt.payload)
			require.False(t, res.Accepted)
			assert.Contains(t, res.Reason, tt.reason)
		})
	}
}

func TestParseTimestamp_RejectsNegativeMillis(t *testing.T) {
	_, ok := parseTimestamp("-100")
	assert.False(t, ok)
}
