package models

// Dashboard - сводка для главного экрана
type Dashboard struct {
	Latitude     float64          `json:"latitude"`
	Longitude    float64          `json:"longitude"`
	UsedFallback bool             `json:"used_fallback"`
	Weather      *Weather         `json:"weather"`
	WeatherError string           `json:"weather_error,omitempty"`
	Safety       *SafetyStatus    `json:"safety"`
	Traffic      TrafficReport    `json:"traffic"`
	Network      V2VNetworkStatus `json:"network"`
}
