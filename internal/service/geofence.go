package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/geo_tracking_system/internal/models"
	"github.com/sirupsen/logrus"
)

// GeofenceService определяет контракт для бизнес-логики управления геозонами
type GeofenceService interface {
	CreateGeofence(ctx context.Context, fence *models.Geofence) error
	GetGeofence(ctx context.Context, id uuid.UUID) (*models.Geofence, error)
	UpdateGeofence(ctx context.Context, fence *models.Geofence) error
	DeactivateGeofence(ctx context.Context, id uuid.UUID) error
	ListGeofences(ctx context.Context, page, pageSize int) ([]*models.Geofence, error)
}

type geofenceService struct {
	repo   GeofenceRepository
	logger *logrus.Logger
}

func NewGeofenceService(repo GeofenceRepository, logger *logrus.Logger) GeofenceService {
	return &geofenceService{
		repo:   repo,
		logger: logger,
	}
}

// validateGeometry проверяет согласованность формы и ее параметров
func validateGeometry(fence *models.Geofence) error {
	switch fence.Kind {
	case models.GeofenceCircle:
		if fence.RadiusMeters <= 0 {
			return fmt.Errorf("circle geofence requires a positive radius")
		}
	case models.GeofencePolygon:
		if len(fence.Ring) < 3 {
			return fmt.Errorf("polygon geofence requires a ring of at least 3 vertices")
		}
	default:
		return fmt.Errorf("unknown geofence kind %q", fence.Kind)
	}
	return nil
}

// CreateGeofence создает геозону
func (s *geofenceService) CreateGeofence(ctx context.Context, fence *models.Geofence) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geofence",
		"method":  "CreateGeofence",
		"name":    fence.Name,
	})
	log.Info("Attempting to create a new geofence")

	if err := validateGeometry(fence); err != nil {
		return fmt.Errorf("service: invalid geofence geometry: %w", err)
	}

	fence.IsActive = true
	if err := s.repo.Create(ctx, fence); err != nil {
		log.WithError(err).Error("Failed to create geofence in repository")
		return fmt.Errorf("service: could not create geofence: %w", err)
	}

	log.WithField("geofence_id", fence.ID).Info("Geofence created successfully")
	return nil
}

// GetGeofence получает геозону по ID: сперва кеш, затем бд
func (s *geofenceService) GetGeofence(ctx context.Context, id uuid.UUID) (*models.Geofence, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "geofence",
		"method":      "GetGeofence",
		"geofence_id": id,
	})

	cached, err := s.repo.GetGeofenceFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Geofence cache read failed, falling back to database")
	}
	if cached != nil {
		return cached, nil
	}

	fence, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get geofence from repository")
		return nil, fmt.Errorf("service: could not get geofence: %w", err)
	}

	if err := s.repo.SetGeofenceCache(ctx, fence); err != nil {
		log.WithError(err).Warn("Failed to cache geofence")
	}
	return fence, nil
}

// UpdateGeofence обновляет существующую геозону
func (s *geofenceService) UpdateGeofence(ctx context.Context, fence *models.Geofence) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "geofence",
		"method":      "UpdateGeofence",
		"geofence_id": fence.ID,
	})
	log.Info("Attempting to update geofence")

	if err := validateGeometry(fence); err != nil {
		return fmt.Errorf("service: invalid geofence geometry: %w", err)
	}

	existing, err := s.repo.GetByID(ctx, fence.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent geofence")
		return fmt.Errorf("service: geofence with id %s not found for update: %w", fence.ID, err)
	}

	existing.Name = fence.Name
	existing.Kind = fence.Kind
	existing.CenterLatitude = fence.CenterLatitude
	existing.CenterLongitude = fence.CenterLongitude
	existing.RadiusMeters = fence.RadiusMeters
	existing.Ring = fence.Ring
	existing.AutoClockIn = fence.AutoClockIn
	existing.AutoClockOut = fence.AutoClockOut
	existing.IsActive = fence.IsActive

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update geofence in repository")
		return fmt.Errorf("service: could not update geofence: %w", err)
	}

	if err := s.repo.InvalidateGeofenceCache(ctx, fence.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate geofence cache")
	}
	log.Info("Geofence updated successfully")
	return nil
}

// DeactivateGeofence деактивирует геозону
func (s *geofenceService) DeactivateGeofence(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "geofence",
		"method":      "DeactivateGeofence",
		"geofence_id": id,
	})
	log.Info("Attempting to deactivate geofence")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to deactivate a non-existent geofence")
		return fmt.Errorf("service: geofence with id %s not found for deactivate: %w", id, err)
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		log.WithError(err).Error("Failed to deactivate geofence in repository")
		return fmt.Errorf("service: could not deactivate geofence: %w", err)
	}

	if err := s.repo.InvalidateGeofenceCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate geofence cache")
	}
	log.Info("Geofence deactivated successfully")
	return nil
}

// ListGeofences возвращает список геозон с пагинацией
func (s *geofenceService) ListGeofences(ctx context.Context, page, pageSize int) ([]*models.Geofence, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "geofence",
		"method":    "ListGeofences",
		"page":      page,
		"page_size": pageSize,
	})

	fences, err := s.repo.ListGeofences(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list geofences from repository")
		return nil, fmt.Errorf("service: could not list geofences: %w", err)
	}

	log.WithField("count", len(fences)).Info("Geofences listed successfully")
	return fences, nil
}
