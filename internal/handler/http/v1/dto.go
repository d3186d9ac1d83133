package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"

	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

// CreateIncidentRequest DTO для сообщения о происшествии
// @Description DTO для сообщения о происшествии
type CreateIncidentRequest struct {
	Type         string   `json:"type" validate:"required,oneof=accident hazard weather ambulance first-aid police roadwork"`
	Description  string   `json:"description,omitempty" validate:"max=1000"`
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
	RadiusMeters int      `json:"radius_meters,omitempty" validate:"omitempty,gt=0,lte=100000"`
}

// UpdateIncidentRequest DTO для обновления происшествия, пустые поля не меняются
// @Description DTO для обновления происшествия
type UpdateIncidentRequest struct {
	Type         *string  `json:"type,omitempty" validate:"omitempty,oneof=accident hazard weather ambulance first-aid police roadwork"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Latitude     *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	RadiusMeters *int     `json:"radius_meters,omitempty" validate:"omitempty,gt=0,lte=100000"`
	Status       *string  `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// IncidentResponse DTO для ответа с информацией о происшествии
// @Description DTO для ответа с информацией о происшествии
type IncidentResponse struct {
	ID           uuid.UUID `json:"id"`
	Type         string    `json:"type"`
	Description  string    `json:"description,omitempty"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters int       `json:"radius_meters"`
	Status       string    `json:"status"`
	ReporterID   string    `json:"reporter_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NearbyIncidentsResponse - происшествия вокруг точки поиска
type NearbyIncidentsResponse struct {
	Latitude     float64             `json:"latitude"`
	Longitude    float64             `json:"longitude"`
	RadiusMeters int                 `json:"radius_meters"`
	UsedFallback bool                `json:"used_fallback"`
	Incidents    []*IncidentResponse `json:"incidents"`
}

// LocationCheckRequest DTO для проверки координат
// @Description DTO для проверки координат
type LocationCheckRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	ActiveUsers      int `json:"active_users"`
	IncidentsLast24h int `json:"incidents_last_24h"`
	WindowMinutes    int `json:"window_minutes"`
}

type SubscribeRequest struct {
	Plan string `json:"plan" validate:"required,oneof=free pro premium"`
}

type ThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

// ProfileResponse - профиль с остатком сообщений V2V на сегодня (-1 без ограничений)
type ProfileResponse struct {
	UserID        string    `json:"user_id"`
	Plan          string    `json:"plan"`
	Theme         string    `json:"theme"`
	V2VDailyCount int       `json:"v2v_daily_count"`
	V2VRemaining  int       `json:"v2v_remaining"`
	LastResetDate string    `json:"last_reset_date"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type SendV2VRequest struct {
	Text       string   `json:"text" validate:"required,max=280"`
	SenderName string   `json:"sender_name,omitempty" validate:"max=64"`
	Latitude   *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude  *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

type SendV2VResponse struct {
	Message   *models.V2VMessage `json:"message"`
	Remaining int                `json:"remaining"`
}

type SOSRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type RouteRequest struct {
	OriginLat   *float64 `json:"origin_lat,omitempty" validate:"omitempty,latitude"`
	OriginLng   *float64 `json:"origin_lng,omitempty" validate:"omitempty,longitude"`
	DestLat     *float64 `json:"dest_lat,omitempty" validate:"omitempty,latitude"`
	DestLng     *float64 `json:"dest_lng,omitempty" validate:"omitempty,longitude"`
	Destination string   `json:"destination,omitempty" validate:"max=255"`
	Mode        string   `json:"mode,omitempty" validate:"omitempty,oneof=shortest less-traffic safest"`
}

type RouteResponse struct {
	Route   *models.Route    `json:"route"`
	Feature *geojson.Feature `json:"feature" swaggertype:"object"`
}

type CreatePostRequest struct {
	Content string     `json:"content" validate:"required,max=1000"`
	GroupID *uuid.UUID `json:"group_id,omitempty"`
}

type CreateGroupRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description,omitempty" validate:"max=500"`
}

type SchedulePostRequest struct {
	Content   string     `json:"content" validate:"required,max=1000"`
	GroupID   *uuid.UUID `json:"group_id,omitempty"`
	PublishAt time.Time  `json:"publish_at" validate:"required"`
}
