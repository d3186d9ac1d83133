package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Geezkick/NjiaSafe-Drive/internal/config"
	"github.com/Geezkick/NjiaSafe-Drive/internal/service"
)

// Services - зависимости обработчиков
type Services struct {
	Incidents  service.IncidentService
	Weather    service.WeatherService
	Geocoding  service.GeocodingService
	Traffic    service.TrafficService
	Dashboard  service.DashboardService
	Plans      service.PlanService
	V2V        service.V2VService
	Security   service.SecurityService
	Navigation service.NavigationService
	Social     service.SocialService
	// LiveFeed отдает поток V2V по WebSocket, nil - маршрут не регистрируется
	LiveFeed http.Handler
}

type Handler struct {
	services Services
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

func (h *Handler) log(c *gin.Context, method string) *logrus.Entry {
	fields := logrus.Fields{"method": method}
	if userID := currentUser(c); userID != "" {
		fields["user_id"] = userID
	}
	return h.logger.WithFields(fields)
}

// bindJSON разбирает и валидирует тело запроса. false - ответ уже отправлен.
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// queryFloat возвращает nil для пустого или нечислового параметра
func queryFloat(c *gin.Context, key string) *float64 {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
