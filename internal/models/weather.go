package models

import (
	"strings"
	"time"
)

// HazardWindSpeed - скорость ветра (м/с), начиная с которой погода считается опасной
const HazardWindSpeed = 15.0

type Weather struct {
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	TemperatureC    float64   `json:"temperature_c"`
	Condition       string    `json:"condition"`
	Description     string    `json:"description"`
	WindSpeedMS     float64   `json:"wind_speed_ms"`
	HumidityPct     float64   `json:"humidity_pct"`
	PrecipitationMM float64   `json:"precipitation_mm"`
	Provider        string    `json:"provider"`
	ObservedAt      time.Time `json:"observed_at"`
	UsedFallback    bool      `json:"used_fallback"`
}

// IsHazardous - дождь, снег, гроза или сильный ветер
func (w *Weather) IsHazardous() bool {
	cond := strings.ToLower(w.Condition + " " + w.Description)
	for _, s := range []string{"rain", "snow", "storm", "thunder", "drizzle"} {
		if strings.Contains(cond, s) {
			return true
		}
	}
	return w.WindSpeedMS > HazardWindSpeed
}
