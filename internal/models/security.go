package models

import (
	"time"

	"github.com/google/uuid"
)

const SecurityEventSOS = "Emergency SOS"

// SecurityEvent - запись журнала SOS и вызовов экстренных служб
type SecurityEvent struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}
