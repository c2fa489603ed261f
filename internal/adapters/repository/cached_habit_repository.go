package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/comitanigiacomo/kanso-countdown/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

var _ domain.HabitRepository = (*CachedHabitRepository)(nil)

const (
	habitListKey = "habits:list"
	habitListTTL = 30 * time.Minute
)

// CachedHabitRepository caches habit listings in a single Redis hash, one
// field per filter. Any write drops the whole hash.
type CachedHabitRepository struct {
	next  domain.HabitRepository
	cache *redis.Client
}

func NewCachedHabitRepository(next domain.HabitRepository, cache *redis.Client) *CachedHabitRepository {
	return &CachedHabitRepository{
		next:  next,
		cache: cache,
	}
}

func listField(filter domain.HabitFilter) string {
	if filter.CategoryID == "" {
		return "all"
	}
	return "category:" + filter.CategoryID
}

func (r *CachedHabitRepository) invalidate(ctx context.Context) {
	if err := r.cache.Del(ctx, habitListKey).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate habit listings: %v", err)
	}
}

func (r *CachedHabitRepository) List(ctx context.Context, filter domain.HabitFilter) ([]*domain.Habit, error) {
	field := listField(filter)

	val, err := r.cache.HGet(ctx, habitListKey, field).Bytes()
	if err == nil {
		var habits []*domain.Habit
		if err := json.Unmarshal(val, &habits); err == nil {
			return habits, nil
		}

		log.Printf("[CACHE] Corrupted habit listing %q, cleaning up", field)
		r.cache.HDel(ctx, habitListKey, field)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	habits, err := r.next.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(habits); err == nil {
		pipe := r.cache.TxPipeline()
		pipe.HSet(ctx, habitListKey, field, data)
		pipe.Expire(ctx, habitListKey, habitListTTL)
		if _, setErr := pipe.Exec(ctx); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return habits, nil
}

func (r *CachedHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	if err := r.next.Create(ctx, habit); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	if err := r.next.Update(ctx, habit); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedHabitRepository) Delete(ctx context.Context, id string) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}
