package cache

import (
	"context"
	"sync"
	"time"

	"github.com/shenikar/geo_tracking_system/internal/models"
)

// MemoryLiveCache — потокобезопасный индекс последних позиций в памяти.
// Запись перезаписывается только более новой точкой, поэтому опоздавшие
// точки не откатывают "последнюю" позицию назад.
type MemoryLiveCache struct {
	mu      sync.RWMutex
	entries map[string]models.LocationSample
}

func NewMemoryLiveCache() *MemoryLiveCache {
	return &MemoryLiveCache{
		entries: make(map[string]models.LocationSample),
	}
}

// Update сохраняет точку, если она не старее текущей записи пользователя
func (c *MemoryLiveCache) Update(ctx context.Context, sample models.LocationSample) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if current, ok := c.entries[sample.UserID]; ok && sample.Timestamp.Before(current.Timestamp) {
		return nil
	}
	c.entries[sample.UserID] = sample
	return nil
}

// Snapshot возвращает позиции не старше maxAge с вычисленным возрастом
func (c *MemoryLiveCache) Snapshot(ctx context.Context, maxAge time.Duration) ([]models.LivePosition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	cutoff := now.Add(-maxAge)

	positions := make([]models.LivePosition, 0, len(c.entries))
	for userID, sample := range c.entries {
		if sample.Timestamp.Before(cutoff) {
			continue
		}
		positions = append(positions, models.LivePosition{
			UserID:     userID,
			Sample:     sample,
			AgeSeconds: now.Sub(sample.Timestamp).Seconds(),
		})
	}
	return positions, nil
}
