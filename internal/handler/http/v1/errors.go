package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
	"github.com/Geezkick/NjiaSafe-Drive/internal/service"
)

// ErrorResponse - тело ответа с ошибкой
// @Description Тело ответа с ошибкой
type ErrorResponse struct {
	Error     string `json:"error"`
	UpgradeTo string `json:"upgrade_to,omitempty"`
	Message   string `json:"message,omitempty"`
}

func upgradePrompt(plan models.Plan) string {
	return "Upgrade to " + string(plan) + " to unlock this feature"
}

// respondError переводит ошибку сервиса в HTTP-ответ
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	var planErr *service.PlanError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &planErr):
		log.WithError(err).Info("Feature requires upgrade")
		c.JSON(http.StatusPaymentRequired, ErrorResponse{
			Error:     "upgrade required",
			UpgradeTo: string(planErr.Required),
			Message:   upgradePrompt(planErr.Required),
		})
	case errors.Is(err, service.ErrDailyLimitReached):
		log.WithError(err).Info("Daily V2V limit reached")
		c.JSON(http.StatusTooManyRequests, ErrorResponse{
			Error:     service.ErrDailyLimitReached.Error(),
			UpgradeTo: string(models.PlanPro),
			Message:   upgradePrompt(models.PlanPro),
		})
	case errors.As(err, &validationErrs):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case matchSentinel(err, badRequestErrors) != nil:
		log.WithError(err).Warn("Invalid request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: matchSentinel(err, badRequestErrors).Error()})
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrLocationNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: notFoundMessage(err)})
	case errors.Is(err, service.ErrWeatherUnavailable), errors.Is(err, service.ErrUpstream):
		log.WithError(err).Error("Upstream provider failed")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "upstream provider unavailable"})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

var badRequestErrors = []error{
	service.ErrInvalidLocation,
	service.ErrEmptyMessage,
	service.ErrInvalidSchedule,
	service.ErrInvalidRoute,
	service.ErrUnknownCategory,
}

// matchSentinel возвращает первую подходящую ошибку из списка; ее текст можно отдать клиенту
func matchSentinel(err error, sentinels []error) error {
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s
		}
	}
	return nil
}

func notFoundMessage(err error) string {
	if errors.Is(err, service.ErrLocationNotFound) {
		return service.ErrLocationNotFound.Error()
	}
	return "resource not found"
}

func badRequest(c *gin.Context, log *logrus.Entry, err error, msg string) {
	log.WithError(err).Warn(msg)
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}
