package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"

	"github.com/Geezkick/NjiaSafe-Drive/internal/geo"
	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

var errPartialLocation = errors.New("latitude and longitude must be set together")

// @Summary Report an incident
// @Description Report a road incident at a location. Ambulance and first-aid reports also dispatch emergency services.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Driver ID"
// @Param incident body CreateIncidentRequest true "Incident report"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.log(c, "createIncident")
	if !h.bindJSON(c, log, &input) {
		return
	}

	model := CreateDTOToIncidentModel(input, currentUser(c))
	if err := h.services.Incidents.ReportIncident(c.Request.Context(), model); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get a list of incidents
// @Description Get a paginated list of incidents, newest first, optionally filtered by type.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Param type query string false "Comma-separated incident types"
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.log(c, "listIncidents")
	filter := models.IncidentFilter{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "pageSize", 20),
		Types:    parseTypes(c.Query("type")),
	}

	incidents, err := h.services.Incidents.ListIncidents(c.Request.Context(), filter)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

func parseTypes(raw string) []models.IncidentType {
	var types []models.IncidentType
	for _, part := range strings.Split(raw, ",") {
		t := models.IncidentType(strings.TrimSpace(part))
		if t.Valid() {
			types = append(types, t)
		}
	}
	return types
}

// @Summary Incidents map layer
// @Description Active incidents around a point as a GeoJSON FeatureCollection with a used_fallback member.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Param radius query int false "Radius in meters"
// @Success 200 {object} object "GeoJSON FeatureCollection"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/map [get]
func (h *Handler) incidentsMap(c *gin.Context) {
	log := h.log(c, "incidentsMap")
	nearby, err := h.services.Incidents.NearbyIncidents(c.Request.Context(),
		queryFloat(c, "lat"), queryFloat(c, "lng"), queryInt(c, "radius", 0))
	if err != nil {
		respondError(c, log, err)
		return
	}
	fc := geo.IncidentsFeatureCollection(nearby.Incidents)
	fc.ExtraMembers = geojson.Properties{"used_fallback": nearby.UsedFallback}
	c.JSON(http.StatusOK, fc)
}

// @Summary Nearby incidents
// @Description Active incidents within a radius of a point. Missing or invalid coordinates fall back to the default location.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Param radius query int false "Radius in meters"
// @Success 200 {object} NearbyIncidentsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/nearby [get]
func (h *Handler) nearbyIncidents(c *gin.Context) {
	log := h.log(c, "nearbyIncidents")
	nearby, err := h.services.Incidents.NearbyIncidents(c.Request.Context(),
		queryFloat(c, "lat"), queryFloat(c, "lng"), queryInt(c, "radius", 0))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToNearbyIncidentsResponse(nearby))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} ErrorResponse "Invalid incident ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid incident ID"})
		return
	}
	log := h.log(c, "getIncident").WithField("id", id)

	incident, err := h.services.Incidents.GetIncident(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update an existing incident
// @Description Update the given fields of an incident.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param incident body UpdateIncidentRequest true "Incident update request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} ErrorResponse "Invalid incident ID or request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid incident ID"})
		return
	}
	log := h.log(c, "updateIncident").WithField("id", id)

	var input UpdateIncidentRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		badRequest(c, log, errPartialLocation, errPartialLocation.Error())
		return
	}

	model := UpdateDTOToIncidentModel(input)
	model.ID = id
	if err := h.services.Incidents.UpdateIncident(c.Request.Context(), model); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(model))
}

// @Summary Deactivate an incident
// @Description Deactivate an incident by its ID. This marks the incident as inactive.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid incident ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid incident ID"})
		return
	}
	log := h.log(c, "deleteIncident").WithField("id", id)

	if err := h.services.Incidents.DeactivateIncident(c.Request.Context(), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Check location for incidents
// @Description Active incidents whose zone covers the point. A non-empty result also queues a danger-zone webhook.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Driver ID"
// @Param location body LocationCheckRequest true "Location check request"
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /location/check [post]
func (h *Handler) checkLocation(c *gin.Context) {
	var input LocationCheckRequest
	log := h.log(c, "checkLocation")
	if !h.bindJSON(c, log, &input) {
		return
	}

	incidents, err := h.services.Incidents.CheckLocation(c.Request.Context(), currentUser(c), *input.Latitude, *input.Longitude)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Area safety status
// @Description Risk level from active incidents reported nearby in the last 24 hours.
// @Tags Location
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Success 200 {object} models.SafetyStatus
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /safety/status [get]
func (h *Handler) safetyStatus(c *gin.Context) {
	log := h.log(c, "safetyStatus")
	status, err := h.services.Incidents.SafetyStatus(c.Request.Context(), queryFloat(c, "lat"), queryFloat(c, "lng"))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// @Summary Get usage statistics
// @Description Distinct drivers that checked their location in the stats window and incidents in the last 24 hours.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.log(c, "getStats")

	stats, err := h.services.Incidents.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StatsResponse{
		ActiveUsers:      stats.ActiveUsers,
		IncidentsLast24h: stats.IncidentsLast24h,
		WindowMinutes:    stats.WindowMinutes,
	})
}
