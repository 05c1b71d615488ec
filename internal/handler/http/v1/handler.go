package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/geo_tracking_system/internal/config"
	"github.com/shenikar/geo_tracking_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	trackingService service.TrackingService
	geofenceService service.GeofenceService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(trackingService service.TrackingService, geofenceService service.GeofenceService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		trackingService: trackingService,
		geofenceService: geofenceService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// parseTimeRange читает параметры from/to в формате RFC3339
func parseTimeRange(c *gin.Context) (time.Time, time.Time, error) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid 'from' parameter")
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid 'to' parameter")
	}
	return from, to, nil
}

// parseOptionalTime читает необязательный параметр времени
func parseOptionalTime(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %q parameter", name)
	}
	return &ts, nil
}

// @Summary Submit a batch of location samples
// @Description Submit a batch of GPS samples for one user. Bad points are rejected individually, the batch never fails as a whole.
// @Tags Tracking
// @Accept json
// @Produce json
// @Param batch body SubmitBatchRequest true "Location batch"
// @Success 200 {object} BatchResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tracking/batch [post]
func (h *Handler) submitBatch(c *gin.Context) {
	var input SubmitBatchRequest
	log := h.logger.WithField("method", "submitBatch")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.trackingService.SubmitBatch(c.Request.Context(), input.UserID, input.SessionID, DTOToSamplePayloads(input.Points))
	if err != nil {
		log.WithError(err).Error("Failed to process batch in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, BatchResultToResponse(result))
}

// @Summary Get live positions
// @Description Get the most recent position of every user not older than max_age_seconds.
// @Tags Tracking
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param max_age_seconds query int false "Maximum sample age in seconds" default(300)
// @Success 200 {array} LivePositionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tracking/live [get]
func (h *Handler) livePositions(c *gin.Context) {
	log := h.logger.WithField("method", "livePositions")

	maxAgeSeconds, err := strconv.Atoi(c.DefaultQuery("max_age_seconds", strconv.Itoa(h.cfg.LiveMaxAgeSeconds)))
	if err != nil || maxAgeSeconds <= 0 {
		maxAgeSeconds = h.cfg.LiveMaxAgeSeconds
	}

	positions, err := h.trackingService.LivePositions(c.Request.Context(), time.Duration(maxAgeSeconds)*time.Second)
	if err != nil {
		log.WithError(err).Error("Failed to get live positions from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, LivePositionsToResponses(positions))
}

// @Summary Get route history
// @Description Get a user's route points and route statistics for a time range.
// @Tags Tracking
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "User ID"
// @Param from query string true "Range start, RFC3339"
// @Param to query string true "Range end, RFC3339"
// @Param session_id query string false "Filter by session"
// @Success 200 {object} RouteHistoryResponse
// @Failure 400 {object} map[string]string "Invalid time range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tracking/history/{userId} [get]
func (h *Handler) routeHistory(c *gin.Context) {
	userID := c.Param("userId")
	log := h.logger.WithField("method", "routeHistory").WithField("user_id", userID)

	from, to, err := parseTimeRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var sessionID *string
	if raw := c.Query("session_id"); raw != "" {
		sessionID = &raw
	}

	history, err := h.trackingService.RouteHistory(c.Request.Context(), userID, from, to, sessionID)
	if err != nil {
		log.WithError(err).Error("Failed to get route history from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, RouteHistoryToResponse(history))
}

// @Summary Export a track
// @Description Export a user's points for a time range as raw JSON, CSV or GPX.
// @Tags Tracking
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "User ID"
// @Param from query string true "Range start, RFC3339"
// @Param to query string true "Range end, RFC3339"
// @Param format query string false "Export format: raw, csv or gpx" default(raw)
// @Success 200 {string} string "Serialized track"
// @Failure 400 {object} map[string]string "Invalid time range or format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tracking/export/{userId} [get]
func (h *Handler) exportTrack(c *gin.Context) {
	userID := c.Param("userId")
	log := h.logger.WithField("method", "exportTrack").WithField("user_id", userID)

	from, to, err := parseTimeRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	format := c.DefaultQuery("format", "raw")
	data, contentType, err := h.trackingService.ExportTrack(c.Request.Context(), userID, from, to, format)
	if err != nil {
		log.WithError(err).Error("Failed to export track")
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to export track"})
		return
	}

	c.Data(http.StatusOK, contentType, data)
}

// @Summary Get geofence events
// @Description Get enter/exit events of a user, optionally filtered by time range and geofence.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user_id query string true "User ID"
// @Param from query string false "Range start, RFC3339"
// @Param to query string false "Range end, RFC3339"
// @Param geofence_id query string false "Geofence ID"
// @Success 200 {array} GeoEventResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events [get]
func (h *Handler) geofenceEvents(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	log := h.logger.WithField("method", "geofenceEvents").WithField("user_id", userID)

	from, err := parseOptionalTime(c, "from")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := parseOptionalTime(c, "to")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var geofenceID *uuid.UUID
	if raw := c.Query("geofence_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid geofence ID"})
			return
		}
		geofenceID = &id
	}

	events, err := h.trackingService.GeofenceEvents(c.Request.Context(), userID, from, to, geofenceID)
	if err != nil {
		log.WithError(err).Error("Failed to get geofence events from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, EventsToResponses(events))
}

// @Summary Get dwell statistics
// @Description Get dwell time statistics of a user over matched enter/exit pairs.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "User ID"
// @Param from query string false "Range start, RFC3339"
// @Param to query string false "Range end, RFC3339"
// @Success 200 {object} DwellStatsResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/dwell/{userId} [get]
func (h *Handler) dwellSummary(c *gin.Context) {
	userID := c.Param("userId")
	log := h.logger.WithField("method", "dwellSummary").WithField("user_id", userID)

	from, err := parseOptionalTime(c, "from")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := parseOptionalTime(c, "to")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats, err := h.trackingService.DwellSummary(c.Request.Context(), userID, from, to)
	if err != nil {
		log.WithError(err).Error("Failed to get dwell summary from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, DwellStatsToResponse(stats))
}

// @Summary Create a new geofence
// @Description Create a new geofence. Requires API key.
// @Tags Geofences
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param geofence body CreateGeofenceRequest true "Geofence creation request"
// @Success 201 {object} GeofenceResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geofences [post]
func (h *Handler) createGeofence(c *gin.Context) {
	var input CreateGeofenceRequest
	log := h.logger.WithField("method", "createGeofence")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToGeofenceModel(input)
	if err := h.geofenceService.CreateGeofence(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create geofence in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToGeofenceResponse(model))
}

// @Summary Get a list of geofences
// @Description Get a paginated list of all geofences. Requires API key.
// @Tags Geofences
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} GeofenceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geofences [get]
func (h *Handler) listGeofences(c *gin.Context) {
	log := h.logger.WithField("method", "listGeofences")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	fences, err := h.geofenceService.ListGeofences(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list geofences from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToGeofenceResponses(fences))
}

// @Summary Get geofence by ID
// @Description Get a single geofence by its ID. Requires API key.
// @Tags Geofences
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Geofence ID"
// @Success 200 {object} GeofenceResponse
// @Failure 400 {object} map[string]string "Invalid geofence ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Geofence not found"
// @Router /geofences/{id} [get]
func (h *Handler) getGeofence(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid geofence ID"})
		return
	}
	log := h.logger.WithField("method", "getGeofence").WithField("id", id)

	fence, err := h.geofenceService.GetGeofence(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get geofence from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "geofence not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToGeofenceResponse(fence))
}

// @Summary Update an existing geofence
// @Description Update an existing geofence by ID. Requires API key.
// @Tags Geofences
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Geofence ID"
// @Param geofence body UpdateGeofenceRequest true "Geofence update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid geofence ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geofences/{id} [put]
func (h *Handler) updateGeofence(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid geofence ID"})
		return
	}
	log := h.logger.WithField("method", "updateGeofence").WithField("id", id)

	var input UpdateGeofenceRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToGeofenceModel(input)
	model.ID = id

	if err := h.geofenceService.UpdateGeofence(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to update geofence in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update geofence in service"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Deactivate a geofence
// @Description Deactivate a geofence by its ID. This marks the geofence as inactive. Requires API key.
// @Tags Geofences
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Geofence ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid geofence ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geofences/{id} [delete]
func (h *Handler) deleteGeofence(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid geofence ID"})
		return
	}
	log := h.logger.WithField("method", "deleteGeofence").WithField("id", id)

	if err := h.geofenceService.DeactivateGeofence(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to deactivate geofence in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to deactivate geofence"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
