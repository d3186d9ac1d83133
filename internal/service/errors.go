package service

import (
	"errors"
	"fmt"

	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUpgradeRequired    = errors.New("upgrade required")
	ErrDailyLimitReached  = errors.New("daily V2V message limit reached")
	ErrInvalidLocation    = errors.New("valid location required")
	ErrEmptyMessage       = errors.New("message is empty")
	ErrLocationNotFound   = errors.New("location not found")
	ErrWeatherUnavailable = errors.New("weather unavailable")
	ErrInvalidSchedule    = errors.New("publish time must be in the future")
	ErrInvalidRoute       = errors.New("destination required")
	ErrUnknownCategory    = errors.New("unknown place category")
	ErrUpstream           = errors.New("upstream provider failed")
)

// PlanError - возможность недоступна на текущем тарифе пользователя
type PlanError struct {
	Feature  models.Feature
	Current  models.Plan
	Required models.Plan
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("%s requires %s plan (current: %s)", e.Feature, e.Required, e.Current)
}

func (e *PlanError) Unwrap() error {
	return ErrUpgradeRequired
}
