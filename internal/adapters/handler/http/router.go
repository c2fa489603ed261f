package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/comitanigiacomo/kanso-countdown/docs"
	"github.com/comitanigiacomo/kanso-countdown/internal/adapters/handler/http/middleware"
)

const (
	statusConnected   = "connected"
	statusUnreachable = "unreachable"
	statusDisabled    = "disabled"
)

type RouterDependencies struct {
	CategoryHandler  *CategoryHandler
	CountdownHandler *CountdownHandler
	HabitHandler     *HabitHandler
	HabitLogHandler  *HabitLogHandler
	StatsHandler     *StatsHandler

	// DB is nil for the in-memory store; Redis is nil when caching is off.
	DB    *sqlx.DB
	Redis *redis.Client

	// RedisEnabled marks Redis as configured. With a nil Redis client it
	// means the connection failed at start-up.
	RedisEnabled bool

	StartTime      time.Time
	AllowedOrigins []string

	// RateLimit is applied only when Redis is available and Limit > 0.
	RateLimit middleware.RateLimit
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"}
	if len(deps.AllowedOrigins) == 0 || contains(deps.AllowedOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = deps.AllowedOrigins
	}
	router.Use(cors.New(corsConfig))

	if deps.Redis != nil && deps.RateLimit.Limit > 0 {
		router.Use(middleware.RateLimiter(deps.Redis, deps.RateLimit))
	}

	router.GET("/health", healthHandler(deps))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, messageResponse{Message: "Hello World"})
	})

	deps.CategoryHandler.RegisterRoutes(api)
	deps.CountdownHandler.RegisterRoutes(api)
	deps.HabitHandler.RegisterRoutes(api)
	deps.HabitLogHandler.RegisterRoutes(api)
	deps.StatsHandler.RegisterRoutes(api)

	return router
}

func healthHandler(deps RouterDependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		dbStatus := statusDisabled
		if deps.DB != nil {
			dbStatus = statusConnected
			if err := deps.DB.PingContext(ctx); err != nil {
				dbStatus = statusUnreachable
			}
		}

		redisStatus := statusDisabled
		if deps.RedisEnabled && deps.Redis == nil {
			redisStatus = statusUnreachable
		}
		if deps.Redis != nil {
			redisStatus = statusConnected
			if err := deps.Redis.Ping(ctx).Err(); err != nil {
				redisStatus = statusUnreachable
			}
		}

		status, code := "ok", http.StatusOK
		if dbStatus == statusUnreachable || redisStatus == statusUnreachable {
			status, code = "degraded", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":   status,
			"database": dbStatus,
			"redis":    redisStatus,
			"uptime":   time.Since(deps.StartTime).String(),
		})
	}
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
