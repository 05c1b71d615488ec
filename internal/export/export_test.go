package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shenikar/geo_tracking_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func testPoints() []*models.LocationSample {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return []*models.LocationSample{
		{
			UserID:    "user-1",
			Timestamp: base,
			Latitude:  55.75,
			Longitude: 37.61,
			Accuracy:  f64(5),
			Altitude:  f64(140.5),
			Source:    "mobile",
			IsMoving:  true,
		},
		{
			UserID:    "user-1",
			Timestamp: base.Add(time.Minute),
			Latitude:  55.751,
			Longitude: 37.612,
			Source:    "desktop",
		},
	}
}

func TestJSON_EmptyInputIsEmptyArray(t *testing.T) {
	data, err := JSON(nil)

	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestJSON_RoundTrip(t *testing.T) {
	data, err := JSON(testPoints())
	require.NoError(t, err)

	var decoded []models.LocationSample
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, 55.75, decoded[0].Latitude)
	assert.Equal(t, "mobile", decoded[0].Source)
}

func TestCSV_HeaderAndColumnOrder(t *testing.T) {
	data, err := CSV(testPoints())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "timestamp,latitude,longitude,accuracy,speed,heading,altitude,source,batteryLevel,isMoving", lines[0])
	assert.Equal(t, "2025-06-01T10:00:00Z,55.75,37.61,5,,,140.5,mobile,,true", lines[1])
	// Отсутствующие опциональные поля — пустые ячейки
	assert.Equal(t, "2025-06-01T10:01:00Z,55.751,37.612,,,,,desktop,,false", lines[2])
}

func TestCSV_EmptyInputOnlyHeader(t *testing.T) {
	data, err := CSV(nil)

	require.NoError(t, err)
	assert.Equal(t, "timestamp,latitude,longitude,accuracy,speed,heading,altitude,source,batteryLevel,isMoving\n", string(data))
}

func TestGPX_SingleTrackWithPoints(t *testing.T) {
	data, err := GPX(testPoints())
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `xmlns="http://www.topografix.com/GPX/1/1"`)
	assert.Equal(t, 1, strings.Count(out, "<trk>"))
	assert.Equal(t, 1, strings.Count(out, "<trkseg>"))
	assert.Equal(t, 2, strings.Count(out, "<trkpt"))
	assert.Contains(t, out, `lat="55.75"`)
	assert.Contains(t, out, "<time>2025-06-01T10:00:00Z</time>")

	// ele пишется только для точки с известной высотой
	assert.Equal(t, 1, strings.Count(out, "<ele>"))
	assert.Contains(t, out, "<ele>140.5</ele>")
}

func TestGPX_EmptyInput(t *testing.T) {
	data, err := GPX(nil)

	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "<trk>")
	assert.NotContains(t, out, "<trkpt")
}
