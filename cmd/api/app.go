package main

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-countdown/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-countdown/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-countdown/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-countdown/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-countdown/internal/config"
	"github.com/comitanigiacomo/kanso-countdown/internal/core/domain"
	"github.com/comitanigiacomo/kanso-countdown/internal/core/services"
	"github.com/comitanigiacomo/kanso-countdown/internal/core/workers"
)

type application struct {
	db          *sqlx.DB
	redis       *redis.Client
	router      *gin.Engine
	statsWorker *workers.StatsWorker
	sweeper     *workers.CountdownSweeper
}

type repositories struct {
	categories domain.CategoryRepository
	countdowns domain.CountdownRepository
	habits     domain.HabitRepository
	logs       domain.HabitLogRepository
}

func newApplication(ctx context.Context, cfg *config.Config, startTime time.Time) (*application, error) {
	app := &application{}

	repos, err := app.openStorage(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	var statsCache domain.StatsCache = cache.NopStatsCache{}
	if cfg.Redis.Enabled {
		rdb, err := cache.NewRedisClient(ctx, cache.RedisOptions{
			Host:     cfg.Redis.Host,
			Port:     strconv.Itoa(cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			log.Printf("[CACHE] redis unavailable, continuing without cache: %v", err)
		} else {
			app.redis = rdb
			repos.habits = repository.NewCachedHabitRepository(repos.habits, rdb)
			statsCache = cache.NewRedisStatsCache(rdb, cfg.Redis.StatsTTLDuration())
			log.Println("[CACHE] redis connected")
		}
	}

	categoryService := services.NewCategoryService(repos.categories)
	countdownService := services.NewCountdownService(repos.countdowns)
	habitService := services.NewHabitService(repos.habits, statsCache)
	statsService := services.NewStatsService(repos.habits, repos.logs, statsCache)

	// Precomputing stats only pays off when they can be cached.
	if app.redis != nil {
		app.statsWorker = workers.NewStatsWorker(statsService, cfg.Workers.StatsQueueSize)
	}
	habitLogService := services.NewHabitLogService(repos.logs, repos.habits, statsCache, app.statsWorker)

	app.sweeper = workers.NewCountdownSweeper(countdownService, cfg.Workers.SweepIntervalDuration())

	deps := adapterHTTP.RouterDependencies{
		CategoryHandler:  adapterHTTP.NewCategoryHandler(categoryService),
		CountdownHandler: adapterHTTP.NewCountdownHandler(countdownService),
		HabitHandler:     adapterHTTP.NewHabitHandler(habitService),
		HabitLogHandler:  adapterHTTP.NewHabitLogHandler(habitLogService),
		StatsHandler:     adapterHTTP.NewStatsHandler(statsService),
		DB:               app.db,
		Redis:            app.redis,
		RedisEnabled:     cfg.Redis.Enabled,
		StartTime:        startTime,
		AllowedOrigins:   cfg.HTTP.Origins(),
	}
	if cfg.RateLimit.Enabled {
		deps.RateLimit = middleware.RateLimit{
			Limit:     cfg.RateLimit.Requests,
			Window:    cfg.RateLimit.WindowDuration(),
			KeyPrefix: cfg.Service.Name + ":rate_limit",
		}
	}
	app.router = adapterHTTP.NewRouter(deps)

	return app, nil
}

func (a *application) openStorage(ctx context.Context, cfg config.DatabaseConfig) (*repositories, error) {
	if cfg.Driver == repository.DriverMemory {
		log.Println("[DB] using in-memory storage, data is lost on exit")
		store := repository.NewMemoryStore()
		return &repositories{
			categories: repository.NewInMemoryCategoryRepository(store),
			countdowns: repository.NewInMemoryCountdownRepository(store),
			habits:     repository.NewInMemoryHabitRepository(store),
			logs:       repository.NewInMemoryHabitLogRepository(store),
		}, nil
	}

	opts := repository.Options{
		Driver:          cfg.Driver,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetimeDuration(),
	}
	switch cfg.Driver {
	case repository.DriverSQLite:
		opts.DSN = repository.SQLiteDSN(cfg.SQLitePath)
	case repository.DriverPostgres:
		opts.DSN = repository.PostgresDSN(cfg.User, cfg.Password, cfg.Host, strconv.Itoa(cfg.Port), cfg.Name, cfg.SSLMode)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := repository.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	a.db = db

	return &repositories{
		categories: repository.NewSQLCategoryRepository(db),
		countdowns: repository.NewSQLCountdownRepository(db),
		habits:     repository.NewSQLHabitRepository(db),
		logs:       repository.NewSQLHabitLogRepository(db),
	}, nil
}

// startWorkers runs the background jobs until ctx is cancelled or Close is
// called.
func (a *application) startWorkers(ctx context.Context) error {
	if a.statsWorker != nil {
		a.statsWorker.Start(ctx)
	}
	return a.sweeper.Start()
}

func (a *application) Close() {
	if a.sweeper != nil {
		a.sweeper.Stop()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			log.Printf("[CACHE] failed to close redis: %v", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			log.Printf("[DB] failed to close database: %v", err)
		}
	}
}
