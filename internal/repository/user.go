package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
	"github.com/Geezkick/NjiaSafe-Drive/internal/service"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{db: db}
}

const profileColumns = `user_id, plan, theme, v2v_daily_count, to_char(last_reset_date, 'YYYY-MM-DD'), updated_at`

func scanProfile(row pgx.Row) (*models.UserProfile, error) {
	profile := &models.UserProfile{}
	err := row.Scan(
		&profile.UserID,
		&profile.Plan,
		&profile.Theme,
		&profile.V2VDailyCount,
		&profile.LastResetDate,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// GetOrCreate возвращает профиль, создавая бесплатный профиль при первом обращении
func (r *UserRepository) GetOrCreate(ctx context.Context, userID string, today string) (*models.UserProfile, error) {
	defaults := models.NewUserProfile(userID, today)
	query := `
		INSERT INTO user_profiles (user_id, plan, theme, v2v_daily_count, last_reset_date)
		VALUES ($1, $2, $3, 0, $4::date)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING ` + profileColumns + `;
	`
	profile, err := scanProfile(r.db.QueryRow(ctx, query, defaults.UserID, defaults.Plan, defaults.Theme, defaults.LastResetDate))
	if err != nil {
		return nil, fmt.Errorf("failed to get or create user profile: %w", err)
	}
	return profile, nil
}

// ResetDailyCount обнуляет счетчик, если он еще не переведен на сегодняшнюю дату.
// Отправка, уже открывшая новые сутки, не затирается.
func (r *UserRepository) ResetDailyCount(ctx context.Context, userID string, today string) error {
	query := `
		UPDATE user_profiles SET
			v2v_daily_count = 0,
			last_reset_date = $2::date,
			updated_at = NOW()
		WHERE user_id = $1 AND last_reset_date <> $2::date;
	`
	if _, err := r.db.Exec(ctx, query, userID, today); err != nil {
		return fmt.Errorf("failed to reset v2v counter: %w", err)
	}
	return nil
}

// SetPlan меняет тариф. Счетчик обнуляется при смене тарифа или суток,
// повторная подписка на текущий тариф его сохраняет.
func (r *UserRepository) SetPlan(ctx context.Context, userID string, plan models.Plan, today string) (*models.UserProfile, error) {
	defaults := models.NewUserProfile(userID, today)
	query := `
		INSERT INTO user_profiles AS p (user_id, plan, theme, v2v_daily_count, last_reset_date)
		VALUES ($1, $2, $3, 0, $4::date)
		ON CONFLICT (user_id) DO UPDATE SET
			plan = EXCLUDED.plan,
			v2v_daily_count = CASE
				WHEN p.plan <> EXCLUDED.plan OR p.last_reset_date <> EXCLUDED.last_reset_date THEN 0
				ELSE p.v2v_daily_count
			END,
			last_reset_date = EXCLUDED.last_reset_date,
			updated_at = NOW()
		RETURNING ` + profileColumns + `;
	`
	profile, err := scanProfile(r.db.QueryRow(ctx, query, userID, plan, defaults.Theme, today))
	if err != nil {
		return nil, fmt.Errorf("failed to set user plan: %w", err)
	}
	return profile, nil
}

// SetTheme меняет только тему, попутно применяя смену суток
func (r *UserRepository) SetTheme(ctx context.Context, userID string, theme string, today string) (*models.UserProfile, error) {
	defaults := models.NewUserProfile(userID, today)
	query := `
		INSERT INTO user_profiles AS p (user_id, plan, theme, v2v_daily_count, last_reset_date)
		VALUES ($1, $2, $3, 0, $4::date)
		ON CONFLICT (user_id) DO UPDATE SET
			theme = EXCLUDED.theme,
			v2v_daily_count = CASE
				WHEN p.last_reset_date <> EXCLUDED.last_reset_date THEN 0
				ELSE p.v2v_daily_count
			END,
			last_reset_date = EXCLUDED.last_reset_date,
			updated_at = NOW()
		RETURNING ` + profileColumns + `;
	`
	profile, err := scanProfile(r.db.QueryRow(ctx, query, userID, defaults.Plan, theme, today))
	if err != nil {
		return nil, fmt.Errorf("failed to set user theme: %w", err)
	}
	return profile, nil
}

// IncrementV2VCount атомарно увеличивает дневной счетчик. Смена суток
// сбрасывает счетчик в той же операции. limit 0 - без ограничения.
// Если лимит уже исчерпан, возвращает service.ErrDailyLimitReached.
func (r *UserRepository) IncrementV2VCount(ctx context.Context, userID string, today string, limit int) (int, error) {
	query := `
		UPDATE user_profiles SET
			v2v_daily_count = CASE WHEN last_reset_date = $2::date THEN v2v_daily_count + 1 ELSE 1 END,
			last_reset_date = $2::date,
			updated_at = NOW()
		WHERE user_id = $1
			AND ($3::int = 0 OR last_reset_date <> $2::date OR v2v_daily_count < $3::int)
		RETURNING v2v_daily_count;
	`
	var count int
	if err := r.db.QueryRow(ctx, query, userID, today, limit).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, service.ErrDailyLimitReached
		}
		return 0, fmt.Errorf("failed to increment v2v counter: %w", err)
	}
	return count, nil
}
