package models

type Place struct {
	Name           string  `json:"name"`
	DisplayName    string  `json:"display_name"`
	Category       string  `json:"category,omitempty"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	DistanceMeters float64 `json:"distance_meters,omitempty"`
}
