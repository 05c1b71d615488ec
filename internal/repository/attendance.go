package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/geo_tracking_system/internal/service"
)

// AttendanceRepository реализует учет смен поверх PostgreSQL.
// Открытая смена — запись с clock_out IS NULL; частичный уникальный
// индекс по user_id гарантирует не более одной открытой смены.
type AttendanceRepository struct {
	db *pgxpool.Pool
}

func NewAttendanceRepository(db *pgxpool.Pool) service.AttendanceService {
	return &AttendanceRepository{db: db}
}

// HasOpenSession проверяет наличие открытой смены у пользователя
func (r *AttendanceRepository) HasOpenSession(ctx context.Context, userID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendance_sessions
			WHERE user_id = $1 AND clock_out IS NULL
		);
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check open attendance session: %w", err)
	}
	return exists, nil
}

// OpenSession открывает смену. Повторное открытие при уже открытой смене —
// no-op за счет ON CONFLICT по частичному индексу.
func (r *AttendanceRepository) OpenSession(ctx context.Context, userID string, geofenceID uuid.UUID) error {
	query := `
		INSERT INTO attendance_sessions (user_id, geofence_id, clock_in, source)
		VALUES ($1, $2, NOW(), 'geofence')
		ON CONFLICT (user_id) WHERE clock_out IS NULL DO NOTHING;
	`
	if _, err := r.db.Exec(ctx, query, userID, geofenceID); err != nil {
		return fmt.Errorf("failed to open attendance session: %w", err)
	}
	return nil
}

// CloseSession закрывает открытую смену пользователя; no-op если открытой нет
func (r *AttendanceRepository) CloseSession(ctx context.Context, userID string) error {
	query := `
		UPDATE attendance_sessions SET clock_out = NOW()
		WHERE user_id = $1 AND clock_out IS NULL;
	`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to close attendance session: %w", err)
	}
	return nil
}
