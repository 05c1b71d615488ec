package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shenikar/geo_tracking_system/internal/models"
	"github.com/sirupsen/logrus"
)

// AttendanceService — контракт учета рабочих смен (внешний коллаборатор)
type AttendanceService interface {
	HasOpenSession(ctx context.Context, userID string) (bool, error)
	OpenSession(ctx context.Context, userID string, geofenceID uuid.UUID) error
	CloseSession(ctx context.Context, userID string) error
}

// DispatchResult — исход побочного эффекта. Err не откатывает уже
// записанное событие: запись событий и эффекты развязаны.
type DispatchResult struct {
	Applied bool
	Err     error
}

// SideEffectDispatcher запускает авто-отметку прихода/ухода по событиям
// геозон. Каждый эффект выполняется не более одного раза на переход,
// ошибки логируются и не блокируют конвейер.
type SideEffectDispatcher struct {
	attendance AttendanceService
	logger     *logrus.Logger
}

func NewSideEffectDispatcher(attendance AttendanceService, logger *logrus.Logger) *SideEffectDispatcher {
	return &SideEffectDispatcher{
		attendance: attendance,
		logger:     logger,
	}
}

// Dispatch применяет авто-отметку для события, если геозона ее требует
func (d *SideEffectDispatcher) Dispatch(ctx context.Context, event *models.GeoEvent, fence *models.Geofence) DispatchResult {
	log := d.logger.WithFields(logrus.Fields{
		"service":     "dispatcher",
		"user_id":     event.UserID,
		"geofence_id": event.GeofenceID,
		"event_type":  event.Type,
	})

	switch event.Type {
	case models.GeoEventEnter:
		if !fence.AutoClockIn {
			return DispatchResult{}
		}
		open, err := d.attendance.HasOpenSession(ctx, event.UserID)
		if err != nil {
			log.WithError(err).Error("Failed to check open attendance session")
			return DispatchResult{Err: err}
		}
		if open {
			// Повторный enter при открытой смене — no-op, а не ошибка
			log.Debug("Attendance session already open, skipping auto clock-in")
			return DispatchResult{}
		}
		if err := d.attendance.OpenSession(ctx, event.UserID, event.GeofenceID); err != nil {
			log.WithError(err).Error("Failed to auto clock-in")
			return DispatchResult{Err: err}
		}
		log.Info("Auto clock-in applied")
		return DispatchResult{Applied: true}

	case models.GeoEventExit:
		if !fence.AutoClockOut {
			return DispatchResult{}
		}
		open, err := d.attendance.HasOpenSession(ctx, event.UserID)
		if err != nil {
			log.WithError(err).Error("Failed to check open attendance session")
			return DispatchResult{Err: err}
		}
		if !open {
			return DispatchResult{}
		}
		if err := d.attendance.CloseSession(ctx, event.UserID); err != nil {
			log.WithError(err).Error("Failed to auto clock-out")
			return DispatchResult{Err: err}
		}
		log.Info("Auto clock-out applied")
		return DispatchResult{Applied: true}
	}

	return DispatchResult{}
}
