package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
	"github.com/Geezkick/NjiaSafe-Drive/internal/service"
)

type SecurityRepository struct {
	db *pgxpool.Pool
}

func NewSecurityRepository(db *pgxpool.Pool) service.SecurityRepository {
	return &SecurityRepository{db: db}
}

func (r *SecurityRepository) Create(ctx context.Context, event *models.SecurityEvent) error {
	query := `
		INSERT INTO security_events (user_id, type, location)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326))
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		event.UserID,
		event.Type,
		event.Longitude,
		event.Latitude,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create security event: %w", err)
	}
	return nil
}

// ListByUser возвращает журнал пользователя, новые события первыми
func (r *SecurityRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.SecurityEvent, error) {
	query := `
		SELECT
			id,
			user_id,
			type,
			ST_Y(location::geometry),
			ST_X(location::geometry),
			created_at
		FROM security_events
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list security events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.SecurityEvent, 0)
	for rows.Next() {
		e := &models.SecurityEvent{}
		if err := rows.Scan(&e.ID, &e.UserID, &e.Type, &e.Latitude, &e.Longitude, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan security event row: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error security events iteration: %w", err)
	}
	return events, nil
}
