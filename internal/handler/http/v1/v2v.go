package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Send a V2V message
// @Description Broadcast a short message to nearby vehicles. Free plan is limited per day.
// @Tags V2V
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Driver ID"
// @Param message body SendV2VRequest true "Message"
// @Success 201 {object} SendV2VResponse
// @Failure 400 {object} ErrorResponse "Empty or too long message"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 429 {object} ErrorResponse "Daily limit reached"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /v2v/messages [post]
func (h *Handler) sendV2V(c *gin.Context) {
	var input SendV2VRequest
	log := h.log(c, "sendV2V")
	if !h.bindJSON(c, log, &input) {
		return
	}

	msg, remaining, err := h.services.V2V.Send(c.Request.Context(), currentUser(c), input.SenderName, input.Text, input.Latitude, input.Longitude)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, SendV2VResponse{Message: msg, Remaining: remaining})
}

// @Summary Recent V2V messages
// @Tags V2V
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Max messages" default(20)
// @Success 200 {array} models.V2VMessage
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /v2v/messages [get]
func (h *Handler) listV2V(c *gin.Context) {
	log := h.log(c, "listV2V")
	msgs, err := h.services.V2V.List(c.Request.Context(), queryInt(c, "limit", 20))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// @Summary V2V network status
// @Tags V2V
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.V2VNetworkStatus
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /v2v/network [get]
func (h *Handler) networkStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.V2V.NetworkStatus(c.Request.Context()))
}
