package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/geo_tracking_system/internal/models"
	"github.com/shenikar/geo_tracking_system/internal/service"
)

type TrackRepository struct {
	db *pgxpool.Pool
}

func NewTrackRepository(db *pgxpool.Pool) service.TrackRepository {
	return &TrackRepository{db: db}
}

// SaveSample сохраняет принятую GPS-точку (append-only)
func (r *TrackRepository) SaveSample(ctx context.Context, sample *models.LocationSample) error {
	query := `
		INSERT INTO location_samples
			(user_id, recorded_at, location, accuracy, speed, heading, altitude, battery_level, source, is_moving, session_id)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		sample.UserID,
		sample.Timestamp,
		sample.Longitude,
		sample.Latitude,
		sample.Accuracy,
		sample.Speed,
		sample.Heading,
		sample.Altitude,
		sample.BatteryLevel,
		sample.Source,
		sample.IsMoving,
		sample.SessionID,
	).Scan(&sample.ID)
	if err != nil {
		return fmt.Errorf("failed to save location sample: %w", err)
	}
	return nil
}

const sampleColumns = `
	id,
	user_id,
	recorded_at,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	accuracy,
	speed,
	heading,
	altitude,
	battery_level,
	source,
	is_moving,
	session_id`

func scanSample(row pgx.Row) (*models.LocationSample, error) {
	sample := &models.LocationSample{}
	err := row.Scan(
		&sample.ID,
		&sample.UserID,
		&sample.Timestamp,
		&sample.Latitude,
		&sample.Longitude,
		&sample.Accuracy,
		&sample.Speed,
		&sample.Heading,
		&sample.Altitude,
		&sample.BatteryLevel,
		&sample.Source,
		&sample.IsMoving,
		&sample.SessionID,
	)
	if err != nil {
		return nil, err
	}
	return sample, nil
}

// SamplesByRange возвращает точки пользователя за период по возрастанию времени
func (r *TrackRepository) SamplesByRange(ctx context.Context, userID string, from, to time.Time, sessionID *string) ([]*models.LocationSample, error) {
	query := `
		SELECT ` + sampleColumns + `
		FROM location_samples
		WHERE user_id = $1 AND recorded_at >= $2 AND recorded_at <= $3
	`
	args := []any{userID, from, to}
	if sessionID != nil {
		query += ` AND session_id = $4`
		args = append(args, *sessionID)
	}
	query += ` ORDER BY recorded_at ASC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query location samples: %w", err)
	}
	defer rows.Close()

	samples := make([]*models.LocationSample, 0)
	for rows.Next() {
		sample, err := scanSample(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location sample row: %w", err)
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iteration in SamplesByRange: %w", err)
	}
	return samples, nil
}

// SaveEvent сохраняет событие перехода границы геозоны (append-only)
func (r *TrackRepository) SaveEvent(ctx context.Context, event *models.GeoEvent) error {
	query := `
		INSERT INTO geo_events (user_id, geofence_id, session_id, event_type, occurred_at, location, accuracy)
		VALUES ($1, $2, $3, $4, $5, ST_SetSRID(ST_MakePoint($6, $7), 4326)::geography, $8)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		event.UserID,
		event.GeofenceID,
		event.SessionID,
		event.Type,
		event.OccurredAt,
		event.Longitude,
		event.Latitude,
		event.Accuracy,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("failed to save geo event: %w", err)
	}
	return nil
}

const eventColumns = `
	id,
	user_id,
	geofence_id,
	session_id,
	event_type,
	occurred_at,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	accuracy`

func scanEvent(row pgx.Row) (*models.GeoEvent, error) {
	event := &models.GeoEvent{}
	err := row.Scan(
		&event.ID,
		&event.UserID,
		&event.GeofenceID,
		&event.SessionID,
		&event.Type,
		&event.OccurredAt,
		&event.Latitude,
		&event.Longitude,
		&event.Accuracy,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// LastEvent возвращает последнее по времени событие пары (пользователь, геозона).
// При равных временах побеждает более поздняя вставка. Нет событий — nil без ошибки.
func (r *TrackRepository) LastEvent(ctx context.Context, userID string, geofenceID uuid.UUID) (*models.GeoEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM geo_events
		WHERE user_id = $1 AND geofence_id = $2
		ORDER BY occurred_at DESC, id DESC
		LIMIT 1;
	`
	event, err := scanEvent(r.db.QueryRow(ctx, query, userID, geofenceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last geo event: %w", err)
	}
	return event, nil
}

// EventsByFilter возвращает события пользователя по необязательным фильтрам
func (r *TrackRepository) EventsByFilter(ctx context.Context, userID string, from, to *time.Time, geofenceID *uuid.UUID) ([]*models.GeoEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM geo_events
		WHERE user_id = $1`
	args := []any{userID}

	if from != nil {
		args = append(args, *from)
		query += ` AND occurred_at >= $` + strconv.Itoa(len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += ` AND occurred_at <= $` + strconv.Itoa(len(args))
	}
	if geofenceID != nil {
		args = append(args, *geofenceID)
		query += ` AND geofence_id = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY occurred_at ASC, id ASC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query geo events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.GeoEvent, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan geo event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iteration in EventsByFilter: %w", err)
	}
	return events, nil
}
