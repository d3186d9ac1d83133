package models

import (
	"time"
)

// LocationCheck представляет запись о проверке местоположения пользователя
type LocationCheck struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	IsDangerous bool      `json:"is_dangerous"`
	CheckedAt   time.Time `json:"checked_at"`
}

// SafetyLevel - оценка обстановки в районе по числу недавних происшествий
type SafetyLevel string

const (
	SafetyHigh     SafetyLevel = "High Risk Area"
	SafetyModerate SafetyLevel = "Moderate Risk"
	SafetySafe     SafetyLevel = "Safe Conditions"
)

type SafetyStatus struct {
	Level           SafetyLevel `json:"level"`
	RecentIncidents int         `json:"recent_incidents"`
	Latitude        float64     `json:"latitude"`
	Longitude       float64     `json:"longitude"`
	RadiusMeters    int         `json:"radius_meters"`
	UsedFallback    bool        `json:"used_fallback"`
}

// Stats - сводная статистика для панели управления
type Stats struct {
	ActiveUsers      int `json:"active_users"`
	IncidentsLast24h int `json:"incidents_last_24h"`
	WindowMinutes    int `json:"window_minutes"`
}
