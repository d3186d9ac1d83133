package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Geezkick/NjiaSafe-Drive/internal/service"
)

// @Summary Send SOS
// @Description Record an emergency SOS at the driver's location and notify responders.
// @Tags Security
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Driver ID"
// @Param sos body SOSRequest true "Driver location"
// @Success 201 {object} models.SecurityEvent
// @Failure 400 {object} ErrorResponse "Location required for SOS"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /security/sos [post]
func (h *Handler) sendSOS(c *gin.Context) {
	var input SOSRequest
	log := h.log(c, "sendSOS")
	if !h.bindJSON(c, log, &input) {
		return
	}

	event, err := h.services.Security.SendSOS(c.Request.Context(), currentUser(c), input.Latitude, input.Longitude)
	if errors.Is(err, service.ErrInvalidLocation) {
		badRequest(c, log, err, "Location required for SOS")
		return
	}
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// @Summary Security events of the driver
// @Tags Security
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Driver ID"
// @Param limit query int false "Max events" default(20)
// @Success 200 {array} models.SecurityEvent
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /security/events [get]
func (h *Handler) listSecurityEvents(c *gin.Context) {
	log := h.log(c, "listSecurityEvents")
	events, err := h.services.Security.ListEvents(c.Request.Context(), currentUser(c), queryInt(c, "limit", 20))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, events)
}
