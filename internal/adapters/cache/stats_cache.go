package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/comitanigiacomo/kanso-countdown/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

var (
	_ domain.StatsCache = (*RedisStatsCache)(nil)
	_ domain.StatsCache = NopStatsCache{}
)

// DefaultStatsTTL bounds how long a habit's stats hash outlives its last write.
const DefaultStatsTTL = 48 * time.Hour

// RedisStatsCache keeps one hash per habit, with one field per evaluation day.
type RedisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStatsCache(client *redis.Client, ttl time.Duration) *RedisStatsCache {
	if ttl <= 0 {
		ttl = DefaultStatsTTL
	}
	return &RedisStatsCache{
		client: client,
		ttl:    ttl,
	}
}

func statsKey(habitID string) string {
	return fmt.Sprintf("stats:%s", habitID)
}

func (c *RedisStatsCache) Get(ctx context.Context, habitID, day string) (*domain.HabitStats, error) {
	val, err := c.client.HGet(ctx, statsKey(habitID), day).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrStatsCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached stats: %w", err)
	}

	var stats domain.HabitStats
	if err := json.Unmarshal(val, &stats); err != nil {
		c.client.HDel(ctx, statsKey(habitID), day)
		return nil, domain.ErrStatsCacheMiss
	}

	return &stats, nil
}

func generationKey(habitID string) string {
	return fmt.Sprintf("stats:gen:%s", habitID)
}

var errStaleGeneration = errors.New("stats generation changed")

func (c *RedisStatsCache) Generation(ctx context.Context, habitID string) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(habitID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read stats generation: %w", err)
	}
	return gen, nil
}

// Set watches the generation key so an Invalidate landing between the
// check and the write aborts the transaction.
func (c *RedisStatsCache) Set(ctx context.Context, day string, gen int64, stats *domain.HabitStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}

	key := statsKey(stats.HabitID)
	genKey := generationKey(stats.HabitID)

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != gen {
			return errStaleGeneration
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, day, data)
			pipe.Expire(ctx, key, c.ttl)
			return nil
		})
		return err
	}, genKey)

	if errors.Is(err, errStaleGeneration) || errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to cache stats: %w", err)
	}
	return nil
}

func (c *RedisStatsCache) Invalidate(ctx context.Context, habitID string) error {
	pipe := c.client.TxPipeline()
	pipe.Incr(ctx, generationKey(habitID))
	pipe.Del(ctx, statsKey(habitID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to invalidate stats: %w", err)
	}
	return nil
}

// NopStatsCache is used when Redis is disabled. Every lookup misses.
type NopStatsCache struct{}

func (NopStatsCache) Get(context.Context, string, string) (*domain.HabitStats, error) {
	return nil, domain.ErrStatsCacheMiss
}

func (NopStatsCache) Generation(context.Context, string) (int64, error) { return 0, nil }

func (NopStatsCache) Set(context.Context, string, int64, *domain.HabitStats) error { return nil }

func (NopStatsCache) Invalidate(context.Context, string) error { return nil }
