package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Geezkick/NjiaSafe-Drive/internal/service"
)

// @Summary Current weather
// @Description Current conditions at a point. Missing or invalid coordinates fall back to the default location.
// @Tags Conditions
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Success 200 {object} models.Weather
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Weather providers unavailable"
// @Router /weather [get]
func (h *Handler) getWeather(c *gin.Context) {
	log := h.log(c, "getWeather")
	weather, err := h.services.Weather.GetWeather(c.Request.Context(), queryFloat(c, "lat"), queryFloat(c, "lng"))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, weather)
}

// @Summary Search places by name
// @Tags Conditions
// @Produce json
// @Security ApiKeyAuth
// @Param q query string true "Free-form query"
// @Param limit query int false "Max results (1-5)" default(5)
// @Success 200 {array} models.Place
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Location not found"
// @Failure 502 {object} ErrorResponse "Geocoder unavailable"
// @Router /geocode/search [get]
func (h *Handler) geocodeSearch(c *gin.Context) {
	log := h.log(c, "geocodeSearch")
	places, err := h.services.Geocoding.Search(c.Request.Context(), c.Query("q"), queryInt(c, "limit", 5))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, places)
}

// @Summary Reverse geocode a point
// @Tags Conditions
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} models.Place
// @Failure 400 {object} ErrorResponse "Invalid coordinates"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Location not found"
// @Failure 502 {object} ErrorResponse "Geocoder unavailable"
// @Router /geocode/reverse [get]
func (h *Handler) geocodeReverse(c *gin.Context) {
	log := h.log(c, "geocodeReverse")
	lat, lng := queryFloat(c, "lat"), queryFloat(c, "lng")
	if lat == nil || lng == nil {
		badRequest(c, log, service.ErrInvalidLocation, service.ErrInvalidLocation.Error())
		return
	}

	place, err := h.services.Geocoding.Reverse(c.Request.Context(), *lat, *lng)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, place)
}

// @Summary Live traffic alerts
// @Tags Conditions
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Success 200 {object} models.TrafficReport
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /traffic/alerts [get]
func (h *Handler) trafficAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Traffic.Alerts(c.Request.Context(), queryFloat(c, "lat"), queryFloat(c, "lng")))
}

// @Summary Dashboard snapshot
// @Description Weather, safety status, traffic and V2V network in one call. A weather failure degrades to weather_error.
// @Tags Conditions
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Success 200 {object} models.Dashboard
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /dashboard [get]
func (h *Handler) dashboard(c *gin.Context) {
	log := h.log(c, "dashboard")
	snapshot, err := h.services.Dashboard.Snapshot(c.Request.Context(), queryFloat(c, "lat"), queryFloat(c, "lng"))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
