package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичный health-check
	api.GET("/system/health", h.healthCheck)

	authed := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
	user := authed.Group("", UserIDMiddleware(h.logger))

	// Происшествия
	authed.GET("/incidents", h.listIncidents)
	authed.GET("/incidents/map", h.incidentsMap)
	authed.GET("/incidents/nearby", h.nearbyIncidents)
	authed.GET("/incidents/stats", h.getStats)
	authed.GET("/incidents/:id", h.getIncident)
	authed.PUT("/incidents/:id", h.updateIncident)
	authed.DELETE("/incidents/:id", h.deleteIncident)
	user.POST("/incidents", h.createIncident)
	user.POST("/location/check", h.checkLocation)
	authed.GET("/safety/status", h.safetyStatus)

	// Погода, геокодирование, обстановка на дорогах
	authed.GET("/weather", h.getWeather)
	authed.GET("/geocode/search", h.geocodeSearch)
	authed.GET("/geocode/reverse", h.geocodeReverse)
	authed.GET("/traffic/alerts", h.trafficAlerts)
	authed.GET("/dashboard", h.dashboard)

	// Профиль и тариф
	user.GET("/users/me", h.getProfile)
	user.PUT("/users/me/plan", h.subscribe)
	user.PUT("/users/me/theme", h.setTheme)

	// V2V
	user.POST("/v2v/messages", h.sendV2V)
	authed.GET("/v2v/messages", h.listV2V)
	authed.GET("/v2v/network", h.networkStatus)
	if h.services.LiveFeed != nil {
		authed.GET("/v2v/ws", gin.WrapH(h.services.LiveFeed))
	}

	// Безопасность
	user.POST("/security/sos", h.sendSOS)
	user.GET("/security/events", h.listSecurityEvents)

	// Навигация
	user.POST("/navigation/route", h.planRoute)
	user.GET("/navigation/places", h.nearbyPlaces)

	// Сообщество
	user.POST("/social/posts", h.createPost)
	authed.GET("/social/posts", h.feed)
	user.POST("/social/groups", h.createGroup)
	authed.GET("/social/groups", h.listGroups)
	user.POST("/social/scheduled", h.schedulePost)
	user.GET("/social/scheduled", h.listScheduled)
}
