package geo

import "math"

// EarthRadiusMeters — средний радиус Земли
const EarthRadiusMeters = 6371000.0

// Point — географическая точка (WGS 84)
type Point struct {
	Lat float64
	Lon float64
}

// Haversine возвращает расстояние по дуге большого круга между двумя
// точками в метрах
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const degToRad = math.Pi / 180

	dLat := (lat2 - lat1) * degToRad
	dLon := (lon2 - lon1) * degToRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// InCircle проверяет попадание точки в круг; граница включается.
// Нулевой или отрицательный радиус — точка не внутри.
func InCircle(p Point, centerLat, centerLon, radiusMeters float64) bool {
	if radiusMeters <= 0 {
		return false
	}
	return Haversine(p.Lat, p.Lon, centerLat, centerLon) <= radiusMeters
}

// InPolygon проверяет попадание точки в полигон методом ray casting
// (правило чётности). Кольцо — замкнутый список вершин без отверстий;
// результат не зависит от направления обхода. Вырожденное кольцо
// (меньше трёх вершин) — точка не внутри.
func InPolygon(p Point, ring []Point) bool {
	if len(ring) < 3 {
		return false
	}

	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		vi, vj := ring[i], ring[j]
		if (vi.Lon > p.Lon) != (vj.Lon > p.Lon) &&
			p.Lat < (vj.Lat-vi.Lat)*(p.Lon-vi.Lon)/(vj.Lon-vi.Lon)+vi.Lat {
			inside = !inside
		}
		j = i
	}
	return inside
}
