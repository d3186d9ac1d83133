package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/Geezkick/NjiaSafe-Drive/internal/geo"
	"github.com/Geezkick/NjiaSafe-Drive/internal/models"
	"github.com/Geezkick/NjiaSafe-Drive/internal/service"
)

const (
	incidentCacheTTL = 5 * time.Minute

	incidentColumns = `
			id,
			type,
			description,
			ST_Y(location::geometry) AS latitude,
			ST_X(location::geometry) AS longitude,
			radius_meters,
			status,
			reporter_id,
			created_at,
			updated_at`
)

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.Type,
		&incident.Description,
		&incident.Latitude,
		&incident.Longitude,
		&incident.RadiusMeters,
		&incident.Status,
		&incident.ReporterID,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	return incident, err
}

func collectIncidents(rows pgx.Rows) ([]*models.Incident, error) {
	defer rows.Close()
	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error incident rows iteration: %w", err)
	}
	return incidents, nil
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (type, description, location, radius_meters, status, reporter_id)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6, $7)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Type,
		incident.Description,
		incident.Longitude,
		incident.Latitude,
		incident.RadiusMeters,
		incident.Status,
		incident.ReporterID,
	).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents
		WHERE id = $1;
	`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

func (r *IncidentRepository) Update(ctx context.Context, incident *models.Incident) error {
	query := `
		UPDATE incidents SET
			type = $1,
			description = $2,
			location = ST_SetSRID(ST_MakePoint($3, $4), 4326),
			radius_meters = $5,
			status = $6,
			updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Type,
		incident.Description,
		incident.Longitude,
		incident.Latitude,
		incident.RadiusMeters,
		incident.Status,
		incident.ID,
	).Scan(&incident.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("incident with id %s: %w", incident.ID, service.ErrNotFound)
		}
		return fmt.Errorf("failed to update incident: %w", err)
	}
	return nil
}

// Delete (деактивация) устанавливает статус 'inactive' для инцидента
func (r *IncidentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE incidents SET
			status = 'inactive',
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate incident: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}

// ListIncidents возвращает список инцидентов с пагинацией и фильтром по типам
func (r *IncidentRepository) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	offset := (filter.Page - 1) * filter.PageSize

	types := make([]string, 0, len(filter.Types))
	for _, t := range filter.Types {
		types = append(types, string(t))
	}

	query := `SELECT` + incidentColumns + `
		FROM incidents
		WHERE cardinality($1::text[]) = 0 OR type = ANY($1::text[])
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, types, filter.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	return collectIncidents(rows)
}

// FindActiveLocation находит активные инциденты, в радиус которых попадает точка
func (r *IncidentRepository) FindActiveLocation(ctx context.Context, lat, lon float64) ([]*models.Incident, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents
		WHERE
			status = 'active'
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				radius_meters
			);
	`
	rows, err := r.db.Query(ctx, query, lon, lat)
	if err != nil {
		return nil, fmt.Errorf("failed to find active incidents by location: %w", err)
	}
	return collectIncidents(rows)
}

// FindNearby возвращает активные инциденты не дальше radiusMeters от точки, ближние первыми
func (r *IncidentRepository) FindNearby(ctx context.Context, lat, lon float64, radiusMeters int) ([]*models.Incident, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents
		WHERE
			status = 'active'
			AND ST_DWithin(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
		ORDER BY ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography)
		LIMIT 200;
	`
	rows, err := r.db.Query(ctx, query, lon, lat, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby incidents: %w", err)
	}
	return collectIncidents(rows)
}

// CountNearby считает активные инциденты в радиусе, созданные не раньше since
func (r *IncidentRepository) CountNearby(ctx context.Context, lat, lon float64, radiusMeters int, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM incidents
		WHERE
			status = 'active'
			AND created_at >= $4
			AND ST_DWithin(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3);
	`
	var count int
	if err := r.db.QueryRow(ctx, query, lon, lat, radiusMeters, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count nearby incidents: %w", err)
	}
	return count, nil
}

// CountNearPath считает активные инциденты не дальше radiusMeters от ломаной маршрута
func (r *IncidentRepository) CountNearPath(ctx context.Context, path []geo.Point, radiusMeters int) (int, error) {
	if len(path) == 0 {
		return 0, nil
	}
	query := `
		SELECT COUNT(*)
		FROM incidents
		WHERE
			status = 'active'
			AND ST_DWithin(location, ST_GeogFromText($1), $2);
	`
	var count int
	if err := r.db.QueryRow(ctx, query, pathWKT(path), radiusMeters).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count incidents near path: %w", err)
	}
	return count, nil
}

// pathWKT переводит точки в WKT с SRID 4326 (порядок lng lat)
func pathWKT(path []geo.Point) string {
	if len(path) == 1 {
		return fmt.Sprintf("SRID=4326;POINT(%f %f)", path[0].Lng, path[0].Lat)
	}
	coords := make([]string, len(path))
	for i, p := range path {
		coords[i] = fmt.Sprintf("%f %f", p.Lng, p.Lat)
	}
	return "SRID=4326;LINESTRING(" + strings.Join(coords, ", ") + ")"
}

// CountSince считает инциденты, созданные не раньше since
func (r *IncidentRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM incidents WHERE created_at >= $1;`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count incidents: %w", err)
	}
	return count, nil
}

// GetLocationCheckStats возвращает количество уникальных пользователей, проверивших геолокацию
func (r *IncidentRepository) GetLocationCheckStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM location_checks
		WHERE checked_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	if err := r.db.QueryRow(ctx, query, minutes).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get location check stats: %w", err)
	}
	return count, nil
}

// SaveLocationCheck сохраняет запись о проверке местоположения в бд
func (r *IncidentRepository) SaveLocationCheck(ctx context.Context, check *models.LocationCheck) error {
	query := `
		INSERT INTO location_checks (user_id, location, is_dangerous)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4)
		RETURNING id, checked_at;
	`
	err := r.db.QueryRow(ctx, query,
		check.UserID,
		check.Longitude,
		check.Latitude,
		check.IsDangerous,
	).Scan(&check.ID, &check.CheckedAt)
	if err != nil {
		return fmt.Errorf("failed to save location check: %w", err)
	}
	return nil
}

func incidentCacheKey(id uuid.UUID) string {
	return "incident:" + id.String()
}

// GetIncidentFromCache возвращает nil, nil при промахе кеша
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	val, err := r.redisClient.Get(ctx, incidentCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, incidentCacheKey(incident.ID), val, incidentCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, incidentCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
