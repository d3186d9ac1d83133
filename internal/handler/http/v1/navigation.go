package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Geezkick/NjiaSafe-Drive/internal/geo"
	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

// @Summary Plan a route
// @Description Route with a safety score. Destination is given by coordinates or an address. Premium plan only.
// @Tags Navigation
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Driver ID"
// @Param route body RouteRequest true "Route request"
// @Success 200 {object} RouteResponse
// @Failure 400 {object} ErrorResponse "Destination required"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 402 {object} ErrorResponse "Upgrade required"
// @Failure 404 {object} ErrorResponse "Destination not found"
// @Failure 502 {object} ErrorResponse "Geocoder unavailable"
// @Router /navigation/route [post]
func (h *Handler) planRoute(c *gin.Context) {
	var input RouteRequest
	log := h.log(c, "planRoute")
	if !h.bindJSON(c, log, &input) {
		return
	}

	route, err := h.services.Navigation.PlanRoute(c.Request.Context(), currentUser(c), models.RouteRequest{
		OriginLat:   input.OriginLat,
		OriginLng:   input.OriginLng,
		DestLat:     input.DestLat,
		DestLng:     input.DestLng,
		Destination: input.Destination,
		Mode:        models.RouteMode(input.Mode),
	})
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, RouteResponse{Route: route, Feature: geo.RouteFeature(route)})
}

// @Summary Nearby places
// @Description Up to three places of a category near the driver. Premium plan only.
// @Tags Navigation
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Driver ID"
// @Param category query string true "gas_station, garage, supermarket, hospital or police"
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Success 200 {array} models.Place
// @Failure 400 {object} ErrorResponse "Unknown category"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 402 {object} ErrorResponse "Upgrade required"
// @Failure 502 {object} ErrorResponse "Places provider unavailable"
// @Router /navigation/places [get]
func (h *Handler) nearbyPlaces(c *gin.Context) {
	log := h.log(c, "nearbyPlaces")
	places, err := h.services.Navigation.NearbyPlaces(c.Request.Context(), currentUser(c),
		c.Query("category"), queryFloat(c, "lat"), queryFloat(c, "lng"))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, places)
}
