package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geo_tracking_system/internal/models"
)

const (
	eventQueueKey = "geofence_event_queue"
)

// EventNotification — полезная нагрузка уведомления о переходе границы геозоны
type EventNotification struct {
	UserID       string              `json:"user_id"`
	GeofenceID   uuid.UUID           `json:"geofence_id"`
	GeofenceName string              `json:"geofence_name"`
	Type         models.GeoEventType `json:"type"`
	Latitude     float64             `json:"latitude"`
	Longitude    float64             `json:"longitude"`
	OccurredAt   time.Time           `json:"occurred_at"`
	SessionID    *string             `json:"session_id,omitempty"`
}

// EventPublisher - интерфейс для публикации уведомлений о событиях
type EventPublisher interface {
	Publish(ctx context.Context, event EventNotification) error
}

// RedisEventPublisher - реализация EventPublisher поверх очереди в Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish кладет уведомление в очередь Redis (LPUSH в левую часть списка)
func (p *RedisEventPublisher) Publish(ctx context.Context, event EventNotification) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event notification: %w", err)
	}

	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event notification to Redis: %w", err)
	}
	return nil
}
