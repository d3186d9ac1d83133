package v1

import (
	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

// CreateDTOToIncidentModel преобразует DTO создания в доменную модель
func CreateDTOToIncidentModel(dto CreateIncidentRequest, reporterID string) *models.Incident {
	return &models.Incident{
		Type:         models.IncidentType(dto.Type),
		Description:  dto.Description,
		Latitude:     *dto.Latitude,
		Longitude:    *dto.Longitude,
		RadiusMeters: dto.RadiusMeters,
		ReporterID:   reporterID,
	}
}

// UpdateDTOToIncidentModel переносит только переданные поля, остальные остаются нулевыми
func UpdateDTOToIncidentModel(dto UpdateIncidentRequest) *models.Incident {
	model := &models.Incident{}
	if dto.Type != nil {
		model.Type = models.IncidentType(*dto.Type)
	}
	if dto.Description != nil {
		model.Description = *dto.Description
	}
	if dto.Latitude != nil && dto.Longitude != nil {
		model.Latitude, model.Longitude = *dto.Latitude, *dto.Longitude
	}
	if dto.RadiusMeters != nil {
		model.RadiusMeters = *dto.RadiusMeters
	}
	if dto.Status != nil {
		model.Status = *dto.Status
	}
	return model
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:           model.ID,
		Type:         string(model.Type),
		Description:  model.Description,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		RadiusMeters: model.RadiusMeters,
		Status:       model.Status,
		ReporterID:   model.ReporterID,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, model := range incidents {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func ModelToNearbyIncidentsResponse(nearby *models.NearbyIncidents) *NearbyIncidentsResponse {
	return &NearbyIncidentsResponse{
		Latitude:     nearby.Latitude,
		Longitude:    nearby.Longitude,
		RadiusMeters: nearby.RadiusMeters,
		UsedFallback: nearby.UsedFallback,
		Incidents:    ModelsToIncidentResponses(nearby.Incidents),
	}
}

func ModelToProfileResponse(profile *models.UserProfile, dailyLimit int) *ProfileResponse {
	return &ProfileResponse{
		UserID:        profile.UserID,
		Plan:          string(profile.Plan),
		Theme:         profile.Theme,
		V2VDailyCount: profile.V2VDailyCount,
		V2VRemaining:  profile.V2VRemaining(dailyLimit),
		LastResetDate: profile.LastResetDate,
		UpdatedAt:     profile.UpdatedAt,
	}
}
