package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
	"github.com/Geezkick/NjiaSafe-Drive/internal/service"
)

type SocialRepository struct {
	db *pgxpool.Pool
}

func NewSocialRepository(db *pgxpool.Pool) service.SocialRepository {
	return &SocialRepository{db: db}
}

func collectPosts(rows pgx.Rows) ([]*models.SocialPost, error) {
	defer rows.Close()
	posts := make([]*models.SocialPost, 0)
	for rows.Next() {
		p := &models.SocialPost{}
		if err := rows.Scan(&p.ID, &p.UserID, &p.Content, &p.GroupID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error post rows iteration: %w", err)
	}
	return posts, nil
}

func (r *SocialRepository) CreatePost(ctx context.Context, post *models.SocialPost) error {
	query := `
		INSERT INTO social_posts (user_id, content, group_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
	`
	if err := r.db.QueryRow(ctx, query, post.UserID, post.Content, post.GroupID).Scan(&post.ID, &post.CreatedAt); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// ListPosts возвращает ленту, новые записи первыми. groupID == nil - все записи.
func (r *SocialRepository) ListPosts(ctx context.Context, page, pageSize int, groupID *uuid.UUID) ([]*models.SocialPost, error) {
	query := `
		SELECT id, user_id, content, group_id, created_at
		FROM social_posts
		WHERE $1::uuid IS NULL OR group_id = $1::uuid
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, groupID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return collectPosts(rows)
}

func (r *SocialRepository) CreateGroup(ctx context.Context, group *models.Group) error {
	query := `
		INSERT INTO social_groups (name, description, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
	`
	if err := r.db.QueryRow(ctx, query, group.Name, group.Description, group.OwnerID).Scan(&group.ID, &group.CreatedAt); err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}
	return nil
}

func (r *SocialRepository) GetGroup(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	g := &models.Group{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, description, owner_id, created_at FROM social_groups WHERE id = $1;`, id,
	).Scan(&g.ID, &g.Name, &g.Description, &g.OwnerID, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("group with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return g, nil
}

func (r *SocialRepository) ListGroups(ctx context.Context, page, pageSize int) ([]*models.Group, error) {
	query := `
		SELECT id, name, description, owner_id, created_at
		FROM social_groups
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	groups := make([]*models.Group, 0)
	for rows.Next() {
		g := &models.Group{}
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.OwnerID, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group row: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error group rows iteration: %w", err)
	}
	return groups, nil
}

func (r *SocialRepository) CreateScheduledPost(ctx context.Context, post *models.ScheduledPost) error {
	query := `
		INSERT INTO scheduled_posts (user_id, content, group_id, publish_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, published, created_at;
	`
	err := r.db.QueryRow(ctx, query, post.UserID, post.Content, post.GroupID, post.PublishAt).
		Scan(&post.ID, &post.Published, &post.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create scheduled post: %w", err)
	}
	return nil
}

func (r *SocialRepository) ListScheduledPosts(ctx context.Context, userID string) ([]*models.ScheduledPost, error) {
	query := `
		SELECT id, user_id, content, group_id, publish_at, published, created_at
		FROM scheduled_posts
		WHERE user_id = $1
		ORDER BY publish_at;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*models.ScheduledPost, 0)
	for rows.Next() {
		p := &models.ScheduledPost{}
		if err := rows.Scan(&p.ID, &p.UserID, &p.Content, &p.GroupID, &p.PublishAt, &p.Published, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan scheduled post row: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error scheduled post rows iteration: %w", err)
	}
	return posts, nil
}

// PublishDue одним запросом помечает наступившие записи опубликованными и
// переносит их в ленту. SKIP LOCKED не дает двум экземплярам опубликовать запись дважды.
func (r *SocialRepository) PublishDue(ctx context.Context, now time.Time, limit int) ([]*models.SocialPost, error) {
	query := `
		WITH due AS (
			UPDATE scheduled_posts SET published = TRUE
			WHERE id IN (
				SELECT id FROM scheduled_posts
				WHERE NOT published AND publish_at <= $1
				ORDER BY publish_at
				LIMIT $2
				FOR UPDATE SKIP LOCKED
			)
			RETURNING user_id, content, group_id, publish_at
		)
		INSERT INTO social_posts (user_id, content, group_id, created_at)
		SELECT user_id, content, group_id, publish_at FROM due
		RETURNING id, user_id, content, group_id, created_at;
	`
	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to publish scheduled posts: %w", err)
	}
	return collectPosts(rows)
}
