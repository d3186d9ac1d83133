package models

// RouteMode - вариант маршрута, выбранный водителем
type RouteMode string

const (
	RouteShortest    RouteMode = "shortest"
	RouteLessTraffic RouteMode = "less-traffic"
	RouteSafest      RouteMode = "safest"
)

type RoutePoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Route struct {
	Mode            RouteMode    `json:"mode"`
	Points          []RoutePoint `json:"points"`
	Polyline        string       `json:"polyline"`
	DistanceMeters  float64      `json:"distance_meters"`
	DurationSeconds float64      `json:"duration_seconds"`
	SafetyScore     int          `json:"safety_score"`
	Source          string       `json:"source"`
	// UsedFallback - точка отправления взята по умолчанию
	UsedFallback bool `json:"used_fallback"`
}

// RouteRequest - пункт назначения задается координатами или адресом
type RouteRequest struct {
	OriginLat   *float64
	OriginLng   *float64
	DestLat     *float64
	DestLng     *float64
	Destination string
	Mode        RouteMode
}

// TrafficReport - смоделированная дорожная обстановка
type TrafficReport struct {
	CongestionLevel int      `json:"congestion_level"`
	Congestion      string   `json:"congestion"`
	Alerts          []string `json:"alerts"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	UsedFallback    bool     `json:"used_fallback"`
}
