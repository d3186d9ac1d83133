package models

import (
	"time"

	"github.com/google/uuid"
)

// V2VMessage - сообщение, разосланное ближайшим машинам
type V2VMessage struct {
	ID         uuid.UUID `json:"id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Text       string    `json:"text"`
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// V2VNetworkStatus - смоделированное состояние сети V2V
type V2VNetworkStatus struct {
	NearbyVehicles int       `json:"nearby_vehicles"`
	SignalStrength int       `json:"signal_strength"`
	UpdatedAt      time.Time `json:"updated_at"`
	// LiveClients - подключенные к этому экземпляру клиенты WebSocket
	LiveClients int `json:"live_clients,omitempty"`
}
