package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

// @Summary Current driver profile
// @Description Plan, theme and today's V2V usage. The daily counter rolls over at midnight in the configured timezone.
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Driver ID"
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/me [get]
func (h *Handler) getProfile(c *gin.Context) {
	log := h.log(c, "getProfile")
	profile, err := h.services.Plans.GetProfile(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToProfileResponse(profile, h.cfg.V2VFreeDailyLimit))
}

// @Summary Change plan
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Driver ID"
// @Param plan body SubscribeRequest true "Plan"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} ErrorResponse "Unknown plan"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/me/plan [put]
func (h *Handler) subscribe(c *gin.Context) {
	var input SubscribeRequest
	log := h.log(c, "subscribe")
	if !h.bindJSON(c, log, &input) {
		return
	}

	profile, err := h.services.Plans.Subscribe(c.Request.Context(), currentUser(c), models.Plan(input.Plan))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToProfileResponse(profile, h.cfg.V2VFreeDailyLimit))
}

// @Summary Change UI theme
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Driver ID"
// @Param theme body ThemeRequest true "Theme"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} ErrorResponse "Unknown theme"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/me/theme [put]
func (h *Handler) setTheme(c *gin.Context) {
	var input ThemeRequest
	log := h.log(c, "setTheme")
	if !h.bindJSON(c, log, &input) {
		return
	}

	profile, err := h.services.Plans.SetTheme(c.Request.Context(), currentUser(c), input.Theme)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToProfileResponse(profile, h.cfg.V2VFreeDailyLimit))
}
