package models

// RouteStats — агрегированная статистика маршрута за период.
// Вычисляется по запросу и никогда не сохраняется.
type RouteStats struct {
	PointCount           int     `json:"point_count"`
	TotalDistanceMeters  float64 `json:"total_distance_meters"`
	TotalDurationSeconds float64 `json:"total_duration_seconds"`
	AverageSpeedKmh      float64 `json:"average_speed_kmh"`
	MaxSpeed             float64 `json:"max_speed"`
	MovingTimeSeconds    float64 `json:"moving_time_seconds"`
}

// RouteHistory — точки маршрута вместе со статистикой
type RouteHistory struct {
	Points []*LocationSample `json:"points"`
	Stats  RouteStats        `json:"stats"`
}

// DwellStats — статистика пребывания в геозонах
type DwellStats struct {
	SampleCount         int     `json:"sample_count"`
	TotalDwellSeconds   float64 `json:"total_dwell_seconds"`
	AverageDwellSeconds float64 `json:"average_dwell_seconds"`
}

// RejectedPoint — точка батча, отклонённая валидатором
type RejectedPoint struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// FailedPoint — точка, принятая валидатором, но не обработанная из-за ошибки
type FailedPoint struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// BatchResult — итог обработки батча. Плохие точки не валят батч целиком:
// вызывающая сторона получает частичный результат по каждой точке.
type BatchResult struct {
	Accepted int             `json:"accepted"`
	Rejected []RejectedPoint `json:"rejected"`
	Errors   []FailedPoint   `json:"errors"`
}
