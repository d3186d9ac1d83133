package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentType - тип происшествия на дороге
type IncidentType string

const (
	IncidentAccident  IncidentType = "accident"
	IncidentHazard    IncidentType = "hazard"
	IncidentWeather   IncidentType = "weather"
	IncidentAmbulance IncidentType = "ambulance"
	IncidentFirstAid  IncidentType = "first-aid"
	IncidentPolice    IncidentType = "police"
	IncidentRoadwork  IncidentType = "roadwork"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var incidentTypes = map[IncidentType]struct{}{
	IncidentAccident:  {},
	IncidentHazard:    {},
	IncidentWeather:   {},
	IncidentAmbulance: {},
	IncidentFirstAid:  {},
	IncidentPolice:    {},
	IncidentRoadwork:  {},
}

func (t IncidentType) Valid() bool {
	_, ok := incidentTypes[t]
	return ok
}

// IsEmergency сообщает, требует ли происшествие выезда экстренной службы
func (t IncidentType) IsEmergency() bool {
	return t == IncidentAmbulance || t == IncidentFirstAid
}

type Incident struct {
	ID           uuid.UUID    `json:"id"`
	Type         IncidentType `json:"type"`
	Description  string       `json:"description"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	RadiusMeters int          `json:"radius_meters"`
	Status       string       `json:"status"`
	ReporterID   string       `json:"reporter_id,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// IncidentFilter - параметры выборки списка происшествий
type IncidentFilter struct {
	Page     int
	PageSize int
	Types    []IncidentType
}

// NearbyIncidents - активные происшествия вокруг точки поиска
type NearbyIncidents struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	UsedFallback bool
	Incidents    []*Incident
}
