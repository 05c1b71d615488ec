package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geo_tracking_system/internal/models"
	"github.com/shenikar/geo_tracking_system/internal/service"
)

type GeofenceRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewGeofenceRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.GeofenceRepository {
	return &GeofenceRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

const geofenceColumns = `
	id,
	organization_id,
	name,
	kind,
	COALESCE(ST_Y(center::geometry), 0) AS center_latitude,
	COALESCE(ST_X(center::geometry), 0) AS center_longitude,
	COALESCE(radius_meters, 0),
	ring,
	auto_clock_in,
	auto_clock_out,
	is_active,
	created_at,
	updated_at`

func scanGeofence(row pgx.Row) (*models.Geofence, error) {
	fence := &models.Geofence{}
	var ringJSON []byte
	err := row.Scan(
		&fence.ID,
		&fence.OrganizationID,
		&fence.Name,
		&fence.Kind,
		&fence.CenterLatitude,
		&fence.CenterLongitude,
		&fence.RadiusMeters,
		&ringJSON,
		&fence.AutoClockIn,
		&fence.AutoClockOut,
		&fence.IsActive,
		&fence.CreatedAt,
		&fence.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(ringJSON) > 0 {
		if err := json.Unmarshal(ringJSON, &fence.Ring); err != nil {
			return nil, fmt.Errorf("failed to decode geofence ring: %w", err)
		}
	}
	return fence, nil
}

func marshalRing(fence *models.Geofence) ([]byte, error) {
	if fence.Kind != models.GeofencePolygon {
		return nil, nil
	}
	return json.Marshal(fence.Ring)
}

// Create создает новую геозону в бд
func (r *GeofenceRepository) Create(ctx context.Context, fence *models.Geofence) error {
	ringJSON, err := marshalRing(fence)
	if err != nil {
		return fmt.Errorf("failed to encode geofence ring: %w", err)
	}

	query := `
		INSERT INTO geofences (organization_id, name, kind, center, radius_meters, ring, auto_clock_in, auto_clock_out, is_active)
		VALUES ($1, $2, $3,
			CASE WHEN $3 = 'circle' THEN ST_SetSRID(ST_MakePoint($4, $5), 4326)::geography END,
			$6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		fence.OrganizationID,
		fence.Name,
		fence.Kind,
		fence.CenterLongitude,
		fence.CenterLatitude,
		fence.RadiusMeters,
		ringJSON,
		fence.AutoClockIn,
		fence.AutoClockOut,
		fence.IsActive,
	).Scan(&fence.ID, &fence.CreatedAt, &fence.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create geofence: %w", err)
	}

	_ = r.invalidateActiveGeofencesCache(ctx)
	return nil
}

// GetByID возвращает геозону по ее UUID
func (r *GeofenceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Geofence, error) {
	query := `SELECT ` + geofenceColumns + ` FROM geofences WHERE id = $1;`

	fence, err := scanGeofence(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("geofence with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get geofence by id: %w", err)
	}
	return fence, nil
}

// Update обновляет геозону
func (r *GeofenceRepository) Update(ctx context.Context, fence *models.Geofence) error {
	ringJSON, err := marshalRing(fence)
	if err != nil {
		return fmt.Errorf("failed to encode geofence ring: %w", err)
	}

	query := `
		UPDATE geofences SET
			name = $1,
			kind = $2,
			center = CASE WHEN $2 = 'circle' THEN ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography END,
			radius_meters = $5,
			ring = $6,
			auto_clock_in = $7,
			auto_clock_out = $8,
			is_active = $9,
			updated_at = NOW()
		WHERE id = $10;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		fence.Name,
		fence.Kind,
		fence.CenterLongitude,
		fence.CenterLatitude,
		fence.RadiusMeters,
		ringJSON,
		fence.AutoClockIn,
		fence.AutoClockOut,
		fence.IsActive,
		fence.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update geofence: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("geofence with id %s not found for update", fence.ID)
	}

	_ = r.invalidateActiveGeofencesCache(ctx)
	return nil
}

// Deactivate снимает флаг is_active с геозоны
func (r *GeofenceRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE geofences SET
			is_active = FALSE,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate geofence: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("geofence with id %s not found for deactivate", id)
	}

	_ = r.invalidateActiveGeofencesCache(ctx)
	return nil
}

// ListGeofences возвращает список геозон с пагинацией
func (r *GeofenceRepository) ListGeofences(ctx context.Context, page, pageSize int) ([]*models.Geofence, error) {
	offset := (page - 1) * pageSize

	query := `SELECT ` + geofenceColumns + ` FROM geofences ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list geofences: %w", err)
	}
	defer rows.Close()

	fences := make([]*models.Geofence, 0)
	for rows.Next() {
		fence, err := scanGeofence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan geofence row: %w", err)
		}
		fences = append(fences, fence)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return fences, nil
}

const activeGeofencesKeyPrefix = "geofences:active:"

func activeGeofencesKey(userID string) string {
	return activeGeofencesKeyPrefix + userID
}

// activeGeofencesFromCache возвращает nil, nil при промахе кэша
func (r *GeofenceRepository) activeGeofencesFromCache(ctx context.Context, userID string) ([]*models.Geofence, error) {
	val, err := r.redisClient.Get(ctx, activeGeofencesKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active geofences from cache: %w", err)
	}

	var fences []*models.Geofence
	if err := json.Unmarshal(val, &fences); err != nil {
		return nil, fmt.Errorf("failed to unmarshal active geofences from cache: %w", err)
	}
	if fences == nil {
		fences = make([]*models.Geofence, 0)
	}
	return fences, nil
}

func (r *GeofenceRepository) setActiveGeofencesCache(ctx context.Context, userID string, fences []*models.Geofence) error {
	val, err := json.Marshal(fences)
	if err != nil {
		return fmt.Errorf("failed to marshal active geofences for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, activeGeofencesKey(userID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set active geofences in cache: %w", err)
	}
	return nil
}

// invalidateActiveGeofencesCache сбрасывает списки всех пользователей:
// изменение геозоны затрагивает всех сотрудников ее организации
func (r *GeofenceRepository) invalidateActiveGeofencesCache(ctx context.Context) error {
	iter := r.redisClient.Scan(ctx, 0, activeGeofencesKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := r.redisClient.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to invalidate active geofences cache: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan active geofences cache: %w", err)
	}
	return nil
}

// ActiveForUser возвращает активные геозоны организации сотрудника.
// Список кэшируется в Redis на cacheTTL; ошибки кэша не мешают чтению из бд
func (r *GeofenceRepository) ActiveForUser(ctx context.Context, userID string) ([]*models.Geofence, error) {
	if cached, err := r.activeGeofencesFromCache(ctx, userID); err == nil && cached != nil {
		return cached, nil
	}

	query := `
		SELECT ` + geofenceColumns + `
		FROM geofences g
		JOIN employees e ON e.organization_id = g.organization_id
		WHERE e.user_id = $1 AND g.is_active = TRUE;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find active geofences for user: %w", err)
	}
	defer rows.Close()

	fences := make([]*models.Geofence, 0)
	for rows.Next() {
		fence, err := scanGeofence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan geofence row in ActiveForUser: %w", err)
		}
		fences = append(fences, fence)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ActiveForUser: %w", err)
	}

	_ = r.setActiveGeofencesCache(ctx, userID, fences)
	return fences, nil
}

// GetGeofenceFromCache пытается получить геозону из Redis
func (r *GeofenceRepository) GetGeofenceFromCache(ctx context.Context, id uuid.UUID) (*models.Geofence, error) {
	key := fmt.Sprintf("geofence:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get geofence from cache: %w", err)
	}

	fence := &models.Geofence{}
	if err := json.Unmarshal(val, fence); err != nil {
		return nil, fmt.Errorf("failed to unmarshal geofence from cache: %w", err)
	}
	return fence, nil
}

// SetGeofenceCache сохраняет геозону в Redis
func (r *GeofenceRepository) SetGeofenceCache(ctx context.Context, fence *models.Geofence) error {
	key := fmt.Sprintf("geofence:%s", fence.ID.String())
	val, err := json.Marshal(fence)
	if err != nil {
		return fmt.Errorf("failed to marshal geofence for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set geofence in cache: %w", err)
	}
	return nil
}

// InvalidateGeofenceCache удаляет геозону из Redis кэша
func (r *GeofenceRepository) InvalidateGeofenceCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("geofence:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate geofence cache: %w", err)
	}
	return nil
}
