package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
	"github.com/Geezkick/NjiaSafe-Drive/internal/service/mocks"
)

const testToday = "2026-03-01"

func newTestPlanService(t *testing.T) (*planService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)

	service := NewPlanService(repo, newTestLogger(), newTestConfig()).(*planService)
	service.clock = func() time.Time { return time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC) }
	return service, repo
}

func TestGetProfile_ResetsCounterOnNewDay(t *testing.T) {
	service, repo := newTestPlanService(t)
	ctx := context.Background()
	stored := &models.UserProfile{UserID: "u1", Plan: models.PlanFree, V2VDailyCount: 5, LastResetDate: "2026-02-28"}

	repo.EXPECT().GetOrCreate(ctx, "u1", testToday).Return(stored, nil).Times(1)
	repo.EXPECT().ResetDailyCount(ctx, "u1", testToday).Return(nil).Times(1)

	profile, err := service.GetProfile(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, 0, profile.V2VDailyCount)
}

func TestGetProfile_SameDayKeepsCounter(t *testing.T) {
	service, repo := newTestPlanService(t)
	ctx := context.Background()
	stored := &models.UserProfile{UserID: "u1", Plan: models.PlanFree, V2VDailyCount: 3, LastResetDate: testToday}

	repo.EXPECT().GetOrCreate(ctx, "u1", testToday).Return(stored, nil).Times(1)
	repo.EXPECT().ResetDailyCount(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	profile, err := service.GetProfile(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, 3, profile.V2VDailyCount)
}

func TestGetProfile_UsesConfiguredTimezone(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	cfg := newTestConfig()
	cfg.Timezone = "Africa/Nairobi"

	service := NewPlanService(repo, newTestLogger(), cfg).(*planService)
	// 22:30 UTC - в Найроби уже следующие сутки
	service.clock = func() time.Time { return time.Date(2026, 3, 1, 22, 30, 0, 0, time.UTC) }

	repo.EXPECT().
		GetOrCreate(gomock.Any(), "u1", "2026-03-02").
		Return(&models.UserProfile{UserID: "u1", LastResetDate: "2026-03-02"}, nil).
		Times(1)

	_, err := service.GetProfile(context.Background(), "u1")
	require.NoError(t, err)
}

func TestSubscribe(t *testing.T) {
	service, repo := newTestPlanService(t)
	ctx := context.Background()
	updated := &models.UserProfile{UserID: "u1", Plan: models.PlanPremium, LastResetDate: testToday}

	repo.EXPECT().GetOrCreate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().SetPlan(ctx, "u1", models.PlanPremium, testToday).Return(updated, nil).Times(1)

	profile, err := service.Subscribe(ctx, "u1", models.PlanPremium)

	require.NoError(t, err)
	assert.Equal(t, models.PlanPremium, profile.Plan)
	assert.Equal(t, 0, profile.V2VDailyCount)
}

func TestSubscribe_RepositoryError(t *testing.T) {
	service, repo := newTestPlanService(t)
	repo.EXPECT().SetPlan(gomock.Any(), "u1", models.PlanPro, testToday).Return(nil, errors.New("db down"))

	_, err := service.Subscribe(context.Background(), "u1", models.PlanPro)
	assert.ErrorContains(t, err, "could not subscribe")
}

func TestSubscribe_UnknownPlan(t *testing.T) {
	service, repo := newTestPlanService(t)
	repo.EXPECT().GetOrCreate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := service.Subscribe(context.Background(), "u1", "gold")
	assert.ErrorContains(t, err, "unknown plan")
}

func TestSetTheme(t *testing.T) {
	service, repo := newTestPlanService(t)
	ctx := context.Background()
	updated := &models.UserProfile{UserID: "u1", Theme: models.ThemeLight, LastResetDate: testToday}

	repo.EXPECT().SetTheme(ctx, "u1", models.ThemeLight, testToday).Return(updated, nil).Times(1)

	profile, err := service.SetTheme(ctx, "u1", models.ThemeLight)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, profile.Theme)

	_, err = service.SetTheme(ctx, "u1", "sepia")
	assert.ErrorContains(t, err, "unknown theme")
}

func TestRequire_FreeUserBlockedFromPremium(t *testing.T) {
	service, repo := newTestPlanService(t)
	ctx := context.Background()

	repo.EXPECT().
		GetOrCreate(ctx, "u1", testToday).
		Return(&models.UserProfile{UserID: "u1", Plan: models.PlanFree, LastResetDate: testToday}, nil).
		Times(1)

	_, err := service.Require(ctx, "u1", models.FeatureNavigation)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpgradeRequired)
	var planErr *PlanError
	require.True(t, errors.As(err, &planErr))
	assert.Equal(t, models.PlanPremium, planErr.Required)
	assert.Equal(t, models.PlanFree, planErr.Current)
}

func TestRequire_PremiumAllowed(t *testing.T) {
	service, repo := newTestPlanService(t)

	repo.EXPECT().
		GetOrCreate(gomock.Any(), "u1", testToday).
		Return(&models.UserProfile{UserID: "u1", Plan: models.PlanPremium, LastResetDate: testToday}, nil).
		Times(1)

	profile, err := service.Require(context.Background(), "u1", models.FeatureGroups)

	require.NoError(t, err)
	assert.Equal(t, models.PlanPremium, profile.Plan)
}

func TestConsumeV2VQuota_Free(t *testing.T) {
	service, repo := newTestPlanService(t)
	ctx := context.Background()

	repo.EXPECT().
		GetOrCreate(ctx, "u1", testToday).
		Return(&models.UserProfile{UserID: "u1", Plan: models.PlanFree, V2VDailyCount: 3, LastResetDate: testToday}, nil).
		Times(1)
	repo.EXPECT().IncrementV2VCount(ctx, "u1", testToday, 5).Return(4, nil).Times(1)

	remaining, err := service.ConsumeV2VQuota(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}

func TestConsumeV2VQuota_LimitReached(t *testing.T) {
	service, repo := newTestPlanService(t)
	ctx := context.Background()

	repo.EXPECT().
		GetOrCreate(ctx, "u1", testToday).
		Return(&models.UserProfile{UserID: "u1", Plan: models.PlanFree, V2VDailyCount: 5, LastResetDate: testToday}, nil).
		Times(1)
	repo.EXPECT().IncrementV2VCount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := service.ConsumeV2VQuota(ctx, "u1")
	assert.ErrorIs(t, err, ErrDailyLimitReached)
}

func TestConsumeV2VQuota_LimitReachedConcurrently(t *testing.T) {
	service, repo := newTestPlanService(t)
	ctx := context.Background()

	repo.EXPECT().
		GetOrCreate(ctx, "u1", testToday).
		Return(&models.UserProfile{UserID: "u1", Plan: models.PlanFree, V2VDailyCount: 4, LastResetDate: testToday}, nil).
		Times(1)
	repo.EXPECT().IncrementV2VCount(ctx, "u1", testToday, 5).Return(0, ErrDailyLimitReached).Times(1)

	_, err := service.ConsumeV2VQuota(ctx, "u1")
	assert.ErrorIs(t, err, ErrDailyLimitReached)
}

func TestConsumeV2VQuota_ProUnlimited(t *testing.T) {
	service, repo := newTestPlanService(t)
	ctx := context.Background()

	repo.EXPECT().
		GetOrCreate(ctx, "u1", testToday).
		Return(&models.UserProfile{UserID: "u1", Plan: models.PlanPro, V2VDailyCount: 50, LastResetDate: testToday}, nil).
		Times(1)
	repo.EXPECT().IncrementV2VCount(ctx, "u1", testToday, 0).Return(51, nil).Times(1)

	remaining, err := service.ConsumeV2VQuota(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, -1, remaining)
}

// memUserRepo хранит профили в памяти с той же семантикой, что и SQL-запросы
// репозитория: каждая запись меняет только свои колонки под одной блокировкой.
type memUserRepo struct {
	mu       sync.Mutex
	profiles map[string]*models.UserProfile
	// afterGet срабатывает один раз после чтения профиля
	afterGet func()
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{profiles: make(map[string]*models.UserProfile)}
}

func (r *memUserRepo) row(userID, today string) *models.UserProfile {
	p, ok := r.profiles[userID]
	if !ok {
		p = models.NewUserProfile(userID, today)
		r.profiles[userID] = p
	}
	return p
}

func (r *memUserRepo) GetOrCreate(_ context.Context, userID string, today string) (*models.UserProfile, error) {
	r.mu.Lock()
	snapshot := *r.row(userID, today)
	hook := r.afterGet
	r.afterGet = nil
	r.mu.Unlock()

	if hook != nil {
		hook()
	}
	return &snapshot, nil
}

func (r *memUserRepo) ResetDailyCount(_ context.Context, userID string, today string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[userID]; ok && p.LastResetDate != today {
		p.V2VDailyCount = 0
		p.LastResetDate = today
	}
	return nil
}

func (r *memUserRepo) SetPlan(_ context.Context, userID string, plan models.Plan, today string) (*models.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.row(userID, today)
	if p.Plan != plan || p.LastResetDate != today {
		p.V2VDailyCount = 0
	}
	p.Plan = plan
	p.LastResetDate = today
	snapshot := *p
	return &snapshot, nil
}

func (r *memUserRepo) SetTheme(_ context.Context, userID string, theme string, today string) (*models.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.row(userID, today)
	p.ResetIfNewDay(today)
	p.Theme = theme
	snapshot := *p
	return &snapshot, nil
}

func (r *memUserRepo) IncrementV2VCount(_ context.Context, userID string, today string, limit int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return 0, ErrNotFound
	}
	p.ResetIfNewDay(today)
	if limit > 0 && p.V2VDailyCount >= limit {
		return 0, ErrDailyLimitReached
	}
	p.V2VDailyCount++
	return p.V2VDailyCount, nil
}

func (r *memUserRepo) stored(userID string) models.UserProfile {
	r.mu.Lock()
	defer r.mu.Unlock()
	return *r.profiles[userID]
}

func newMemPlanService(repo *memUserRepo) *planService {
	service := NewPlanService(repo, newTestLogger(), newTestConfig()).(*planService)
	service.clock = func() time.Time { return time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC) }
	return service
}

func TestProfileWrites_KeepQuotaUsedInBetween(t *testing.T) {
	repo := newMemUserRepo()
	service := newMemPlanService(repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := service.ConsumeV2VQuota(ctx, "u1")
		require.NoError(t, err)
	}

	// смена темы и тарифа приходят между чтением профиля и списанием квоты
	repo.afterGet = func() {
		_, err := service.SetTheme(ctx, "u1", models.ThemeLight)
		require.NoError(t, err)
		_, err = service.Subscribe(ctx, "u1", models.PlanFree)
		require.NoError(t, err)
	}
	remaining, err := service.ConsumeV2VQuota(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)

	stored := repo.stored("u1")
	assert.Equal(t, 4, stored.V2VDailyCount)
	assert.Equal(t, models.ThemeLight, stored.Theme)
	assert.Equal(t, models.PlanFree, stored.Plan)
}

func TestSetTheme_DoesNotRevertPlan(t *testing.T) {
	repo := newMemUserRepo()
	service := newMemPlanService(repo)
	ctx := context.Background()

	_, err := service.GetProfile(ctx, "u1")
	require.NoError(t, err)

	repo.afterGet = func() {
		_, err := service.Subscribe(ctx, "u1", models.PlanPremium)
		require.NoError(t, err)
	}
	_, err = service.Require(ctx, "u1", models.FeatureGroups)
	assert.ErrorIs(t, err, ErrUpgradeRequired)

	profile, err := service.SetTheme(ctx, "u1", models.ThemeLight)
	require.NoError(t, err)
	assert.Equal(t, models.PlanPremium, profile.Plan)
	assert.Equal(t, models.PlanPremium, repo.stored("u1").Plan)
}

func TestProfileWrites_ConcurrentSendsStayWithinLimit(t *testing.T) {
	repo := newMemUserRepo()
	service := newMemPlanService(repo)
	ctx := context.Background()

	var wg sync.WaitGroup
	var sent atomic.Int32
	for i := 0; i < 10; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_, err := service.ConsumeV2VQuota(ctx, "u1")
			if err == nil {
				sent.Add(1)
				return
			}
			assert.ErrorIs(t, err, ErrDailyLimitReached)
		}()
		go func() {
			defer wg.Done()
			_, err := service.SetTheme(ctx, "u1", models.ThemeLight)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := service.Subscribe(ctx, "u1", models.PlanFree)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(5), sent.Load())
	assert.Equal(t, 5, repo.stored("u1").V2VDailyCount)
}

func TestGetProfile_RolloverKeepsSendFromNewDay(t *testing.T) {
	repo := newMemUserRepo()
	service := newMemPlanService(repo)
	ctx := context.Background()
	repo.profiles["u1"] = &models.UserProfile{UserID: "u1", Plan: models.PlanFree, V2VDailyCount: 5, LastResetDate: "2026-02-28"}

	// отправка из другого запроса уже открыла новые сутки
	repo.afterGet = func() {
		count, err := repo.IncrementV2VCount(ctx, "u1", testToday, 5)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	}
	_, err := service.GetProfile(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.stored("u1").V2VDailyCount)
	assert.Equal(t, testToday, repo.stored("u1").LastResetDate)
}

func TestSubscribe_SamePlanKeepsCounter(t *testing.T) {
	repo := newMemUserRepo()
	service := newMemPlanService(repo)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := service.ConsumeV2VQuota(ctx, "u1")
		require.NoError(t, err)
	}

	profile, err := service.Subscribe(ctx, "u1", models.PlanFree)
	require.NoError(t, err)
	assert.Equal(t, 5, profile.V2VDailyCount)

	_, err = service.ConsumeV2VQuota(ctx, "u1")
	assert.ErrorIs(t, err, ErrDailyLimitReached)
}

func TestSubscribe_PlanChangeResetsCounter(t *testing.T) {
	repo := newMemUserRepo()
	service := newMemPlanService(repo)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := service.ConsumeV2VQuota(ctx, "u1")
		require.NoError(t, err)
	}

	profile, err := service.Subscribe(ctx, "u1", models.PlanPro)
	require.NoError(t, err)
	assert.Equal(t, models.PlanPro, profile.Plan)
	assert.Equal(t, 0, profile.V2VDailyCount)
}
