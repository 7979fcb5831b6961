// Package cache кэширует месячную доступность в Redis.
// Кэш опциональный: при nil клиенте все операции - no-op,
// сбои Redis трактуются как промах, а не как ошибка запроса.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/citystride/CST-BookingService/internal/domain"
)

var (
	// ErrCacheMiss возвращается при отсутствии значения в кэше
	ErrCacheMiss = errors.New("availability.cache: cache miss")

	// ErrCacheUnavailable возвращается при сбое Redis или отключенном кэше
	ErrCacheUnavailable = errors.New("availability.cache: cache unavailable")
)

// AvailabilityCache кэш помесячной доступности тура.
// Ключ - (тур, язык, год, месяц); значение - карта дата -> DateAvailability
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAvailabilityCache создает кэш доступности.
// client может быть nil - тогда кэш всегда промахивается
func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func monthKey(tourID, languageCode string, year, month int) string {
	return fmt.Sprintf("availability:%s:%s:%04d-%02d", tourID, languageCode, year, month)
}

// GetMonth читает месячную доступность из кэша
func (c *AvailabilityCache) GetMonth(ctx context.Context, tourID, languageCode string, year, month int) (map[string]domain.DateAvailability, error) {
	if c.client == nil {
		return nil, ErrCacheUnavailable
	}

	raw, err := c.client.Get(ctx, monthKey(tourID, languageCode, year, month)).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetMonth: %v", ErrCacheUnavailable, err)
	}

	var days map[string]domain.DateAvailability
	if err := json.Unmarshal(raw, &days); err != nil {
		// Битая запись равносильна промаху, перечитаем из БД
		return nil, ErrCacheMiss
	}

	return days, nil
}

// SetMonth сохраняет месячную доступность в кэш с TTL
func (c *AvailabilityCache) SetMonth(ctx context.Context, tourID, languageCode string, year, month int, days map[string]domain.DateAvailability) error {
	if c.client == nil {
		return ErrCacheUnavailable
	}

	raw, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("%w: SetMonth - marshal: %v", ErrCacheUnavailable, err)
	}

	if err := c.client.Set(ctx, monthKey(tourID, languageCode, year, month), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: SetMonth: %v", ErrCacheUnavailable, err)
	}

	return nil
}

// InvalidateTour удаляет все закэшированные месяцы тура.
// Вызывается после успешного бронирования, чтобы календарь
// не показывал устаревшие остатки дольше TTL
func (c *AvailabilityCache) InvalidateTour(ctx context.Context, tourID string) error {
	if c.client == nil {
		return ErrCacheUnavailable
	}

	pattern := fmt.Sprintf("availability:%s:*", tourID)

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%w: InvalidateTour - scan: %v", ErrCacheUnavailable, err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: InvalidateTour - del: %v", ErrCacheUnavailable, err)
	}

	return nil
}
