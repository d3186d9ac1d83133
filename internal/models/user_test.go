package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanAllows(t *testing.T) {
	tests := []struct {
		plan    Plan
		feature Feature
		allowed bool
	}{
		{PlanFree, FeatureUnlimitedV2V, false},
		{PlanFree, FeatureNavigation, false},
		{PlanFree, FeatureGroups, false},
		{PlanPro, FeatureUnlimitedV2V, true},
		{PlanPro, FeatureGroups, true},
		{PlanPro, FeatureNavigation, false},
		{PlanPro, FeatureScheduledPosts, false},
		{PlanPremium, FeatureNavigation, true},
		{PlanPremium, FeatureNearbyPlaces, true},
		{PlanPremium, FeatureScheduledPosts, true},
		{Plan("gold"), FeatureGroups, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.plan)+"/"+string(tt.feature), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.plan.Allows(tt.feature))
		})
	}
}

func TestResetIfNewDay(t *testing.T) {
	profile := &UserProfile{UserID: "u1", Plan: PlanFree, V2VDailyCount: 5, LastResetDate: "2026-10-17"}

	assert.True(t, profile.ResetIfNewDay("2026-10-18"))
	assert.Equal(t, 0, profile.V2VDailyCount)
	assert.Equal(t, "2026-10-18", profile.LastResetDate)

	profile.V2VDailyCount = 3
	assert.False(t, profile.ResetIfNewDay("2026-10-18"))
	assert.Equal(t, 3, profile.V2VDailyCount)
}

func TestV2VRemaining(t *testing.T) {
	free := &UserProfile{Plan: PlanFree, V2VDailyCount: 3}
	assert.Equal(t, 2, free.V2VRemaining(5))

	free.V2VDailyCount = 7
	assert.Equal(t, 0, free.V2VRemaining(5))

	pro := &UserProfile{Plan: PlanPro, V2VDailyCount: 100}
	assert.Equal(t, -1, pro.V2VRemaining(5))
}

func TestWeatherIsHazardous(t *testing.T) {
	assert.True(t, (&Weather{Condition: "Rain"}).IsHazardous())
	assert.True(t, (&Weather{Description: "light snow"}).IsHazardous())
	assert.True(t, (&Weather{Condition: "Clear", WindSpeedMS: 15.5}).IsHazardous())
	assert.False(t, (&Weather{Condition: "Clouds", WindSpeedMS: 15}).IsHazardous())
}
