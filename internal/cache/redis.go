package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geo_tracking_system/internal/models"
)

const (
	livePositionKeyPrefix = "live_position:"
	// Позиция в Redis живет сутки: кеш эфемерный и восстанавливается
	// из сохраненных точек
	livePositionTTL = 24 * time.Hour
)

// Сравнение и запись выполняются одним шагом на стороне Redis:
// между инстансами сервиса нет общего мьютекса, и отставший писатель
// не должен затереть более свежую позицию
var liveUpdateScript = redis.NewScript(`
local ts = redis.call('HGET', KEYS[1], 'ts')
if ts and tonumber(ts) > tonumber(ARGV[1]) then
	return 0
end
redis.call('HSET', KEYS[1], 'ts', ARGV[1], 'payload', ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return 1
`)

// RedisLiveCache — реализация индекса последних позиций поверх Redis,
// переживает рестарт сервиса и разделяется между инстансами
type RedisLiveCache struct {
	redisClient *redis.Client
}

func NewRedisLiveCache(client *redis.Client) *RedisLiveCache {
	return &RedisLiveCache{
		redisClient: client,
	}
}

func liveKey(userID string) string {
	return livePositionKeyPrefix + userID
}

// Update сохраняет точку, если она не старее уже записанной
func (c *RedisLiveCache) Update(ctx context.Context, sample models.LocationSample) error {
	payload, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("failed to marshal live position: %w", err)
	}

	err = liveUpdateScript.Run(ctx, c.redisClient,
		[]string{liveKey(sample.UserID)},
		sample.Timestamp.UnixMilli(),
		payload,
		livePositionTTL.Milliseconds(),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to update live position in Redis: %w", err)
	}
	return nil
}

// Snapshot собирает все позиции не старше maxAge через SCAN по префиксу
func (c *RedisLiveCache) Snapshot(ctx context.Context, maxAge time.Duration) ([]models.LivePosition, error) {
	now := time.Now()
	cutoff := now.Add(-maxAge)

	positions := make([]models.LivePosition, 0)
	iter := c.redisClient.Scan(ctx, 0, livePositionKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		raw, err := c.redisClient.HGet(ctx, iter.Val(), "payload").Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to read live position from Redis: %w", err)
		}

		var sample models.LocationSample
		if err := json.Unmarshal(raw, &sample); err != nil {
			// Битая запись не должна ломать снапшот целиком
			continue
		}
		if sample.Timestamp.Before(cutoff) {
			continue
		}
		positions = append(positions, models.LivePosition{
			UserID:     sample.UserID,
			Sample:     sample,
			AgeSeconds: now.Sub(sample.Timestamp).Seconds(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan live positions in Redis: %w", err)
	}
	return positions, nil
}
