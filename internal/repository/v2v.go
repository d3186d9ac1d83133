package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
	"github.com/Geezkick/NjiaSafe-Drive/internal/service"
)

type V2VRepository struct {
	db *pgxpool.Pool
}

func NewV2VRepository(db *pgxpool.Pool) service.V2VRepository {
	return &V2VRepository{db: db}
}

// Create сохраняет сообщение. Координаты необязательны.
func (r *V2VRepository) Create(ctx context.Context, msg *models.V2VMessage) error {
	query := `
		INSERT INTO v2v_messages (sender_id, sender_name, text, location)
		VALUES (
			$1, $2, $3,
			CASE WHEN $4::float8 IS NULL OR $5::float8 IS NULL THEN NULL
			ELSE ST_SetSRID(ST_MakePoint($5::float8, $4::float8), 4326)::geography END
		)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		msg.SenderID,
		msg.SenderName,
		msg.Text,
		msg.Latitude,
		msg.Longitude,
	).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create v2v message: %w", err)
	}
	return nil
}

// ListRecent возвращает последние сообщения, новые первыми
func (r *V2VRepository) ListRecent(ctx context.Context, limit int) ([]*models.V2VMessage, error) {
	query := `
		SELECT
			id,
			sender_id,
			sender_name,
			text,
			ST_Y(location::geometry),
			ST_X(location::geometry),
			created_at
		FROM v2v_messages
		ORDER BY created_at DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list v2v messages: %w", err)
	}
	defer rows.Close()

	messages := make([]*models.V2VMessage, 0)
	for rows.Next() {
		msg := &models.V2VMessage{}
		if err := rows.Scan(
			&msg.ID,
			&msg.SenderID,
			&msg.SenderName,
			&msg.Text,
			&msg.Latitude,
			&msg.Longitude,
			&msg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan v2v message row: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error v2v rows iteration: %w", err)
	}
	return messages, nil
}
