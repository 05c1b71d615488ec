package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Прием точек с мобильных устройств не требует API-ключа
	tracking := api.Group("/tracking")
	{
		tracking.POST("/batch", h.submitBatch)
	}

	// Маршруты мониторинга и отчетов
	monitoring := api.Group("/tracking")
	monitoring.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		monitoring.GET("/live", h.livePositions)
		monitoring.GET("/history/:userId", h.routeHistory)
		monitoring.GET("/export/:userId", h.exportTrack)
	}

	// Маршруты событий геозон
	events := api.Group("/events")
	events.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		events.GET("", h.geofenceEvents)
		events.GET("/dwell/:userId", h.dwellSummary)
	}

	// Маршруты для управления геозонами (CRUD)
	geofences := api.Group("/geofences")
	geofences.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		geofences.POST("", h.createGeofence)
		geofences.GET("", h.listGeofences)
		geofences.GET("/:id", h.getGeofence)
		geofences.PUT("/:id", h.updateGeofence)
		geofences.DELETE("/:id", h.deleteGeofence)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
