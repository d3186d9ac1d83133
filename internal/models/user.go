package models

import "time"

// Plan - тарифный план пользователя
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPro     Plan = "pro"
	PlanPremium Plan = "premium"
)

// Feature - платная возможность, доступная начиная с определенного тарифа
type Feature string

const (
	FeatureUnlimitedV2V   Feature = "unlimited_v2v"
	FeatureGroups         Feature = "groups"
	FeatureNavigation     Feature = "navigation"
	FeatureNearbyPlaces   Feature = "nearby_places"
	FeatureScheduledPosts Feature = "scheduled_posts"
)

var planRank = map[Plan]int{
	PlanFree:    0,
	PlanPro:     1,
	PlanPremium: 2,
}

var featurePlans = map[Feature]Plan{
	FeatureUnlimitedV2V:   PlanPro,
	FeatureGroups:         PlanPro,
	FeatureNavigation:     PlanPremium,
	FeatureNearbyPlaces:   PlanPremium,
	FeatureScheduledPosts: PlanPremium,
}

func (p Plan) Valid() bool {
	_, ok := planRank[p]
	return ok
}

// RequiredPlan возвращает минимальный тариф для возможности
func RequiredPlan(f Feature) Plan {
	if p, ok := featurePlans[f]; ok {
		return p
	}
	return PlanFree
}

// Allows проверяет, включена ли возможность в тариф. Неизвестный тариф считается бесплатным.
func (p Plan) Allows(f Feature) bool {
	return planRank[p] >= planRank[RequiredPlan(f)]
}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DateLayout - формат хранения даты последнего сброса счетчика
const DateLayout = "2006-01-02"

// UserProfile хранит тариф, тему и дневной счетчик сообщений V2V
type UserProfile struct {
	UserID        string    `json:"user_id"`
	Plan          Plan      `json:"plan"`
	Theme         string    `json:"theme"`
	V2VDailyCount int       `json:"v2v_daily_count"`
	LastResetDate string    `json:"last_reset_date"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewUserProfile создает профиль по умолчанию для нового пользователя
func NewUserProfile(userID string, today string) *UserProfile {
	return &UserProfile{
		UserID:        userID,
		Plan:          PlanFree,
		Theme:         ThemeDark,
		LastResetDate: today,
	}
}

// ResetIfNewDay обнуляет счетчик, если сохраненная дата отличается от сегодняшней.
// Возвращает true, если профиль изменился.
func (u *UserProfile) ResetIfNewDay(today string) bool {
	if u.LastResetDate == today {
		return false
	}
	u.V2VDailyCount = 0
	u.LastResetDate = today
	return true
}

// V2VRemaining возвращает остаток сообщений на сегодня, -1 - без ограничений
func (u *UserProfile) V2VRemaining(limit int) int {
	if u.Plan.Allows(FeatureUnlimitedV2V) || limit <= 0 {
		return -1
	}
	if left := limit - u.V2VDailyCount; left > 0 {
		return left
	}
	return 0
}
