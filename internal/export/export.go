package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/shenikar/geo_tracking_system/internal/models"
)

// csvColumns — фиксированный порядок колонок CSV-выгрузки
var csvColumns = []string{
	"timestamp", "latitude", "longitude", "accuracy", "speed",
	"heading", "altitude", "source", "batteryLevel", "isMoving",
}

// JSON сериализует точки как есть
func JSON(points []*models.LocationSample) ([]byte, error) {
	if points == nil {
		points = []*models.LocationSample{}
	}
	return json.Marshal(points)
}

// CSV сериализует точки в CSV с фиксированным порядком колонок.
// Отсутствующие опциональные поля — пустые ячейки.
func CSV(points []*models.LocationSample) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvColumns); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, p := range points {
		record := []string{
			p.Timestamp.UTC().Format(time.RFC3339),
			formatFloat(p.Latitude),
			formatFloat(p.Longitude),
			formatOptional(p.Accuracy),
			formatOptional(p.Speed),
			formatOptional(p.Heading),
			formatOptional(p.Altitude),
			p.Source,
			formatOptional(p.BatteryLevel),
			strconv.FormatBool(p.IsMoving),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

type gpxTrackPoint struct {
	Lat  float64  `xml:"lat,attr"`
	Lon  float64  `xml:"lon,attr"`
	Ele  *float64 `xml:"ele,omitempty"`
	Time string   `xml:"time"`
}

type gpxTrackSegment struct {
	Points []gpxTrackPoint `xml:"trkpt"`
}

type gpxTrack struct {
	Name    string          `xml:"name"`
	Segment gpxTrackSegment `xml:"trkseg"`
}

type gpxDocument struct {
	XMLName xml.Name `xml:"gpx"`
	Version string   `xml:"version,attr"`
	Creator string   `xml:"creator,attr"`
	Xmlns   string   `xml:"xmlns,attr"`
	Track   gpxTrack `xml:"trk"`
}

// GPX сериализует точки в один <trk> с упорядоченными <trkpt>;
// <ele> пишется только если высота известна
func GPX(points []*models.LocationSample) ([]byte, error) {
	doc := gpxDocument{
		Version: "1.1",
		Creator: "geo_tracking_system",
		Xmlns:   "http://www.topografix.com/GPX/1/1",
		Track: gpxTrack{
			Name: "track",
		},
	}

	for _, p := range points {
		doc.Track.Segment.Points = append(doc.Track.Segment.Points, gpxTrackPoint{
			Lat:  p.Latitude,
			Lon:  p.Longitude,
			Ele:  p.Altitude,
			Time: p.Timestamp.UTC().Format(time.RFC3339),
		})
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gpx: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
