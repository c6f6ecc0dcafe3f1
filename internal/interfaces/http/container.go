package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/codearena/arena-admin/internal/infrastructure/config"
	"github.com/codearena/arena-admin/internal/interfaces/http/handlers"
	"github.com/codearena/arena-admin/internal/interfaces/http/middleware"
	"github.com/codearena/arena-admin/internal/shared/logger"
)

// Container holds infrastructure, use cases, handlers and middlewares, wired
// together once at startup.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	svcs  *services
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	loginLimiter         *middleware.RateLimiter
}

// NewContainer creates a Container with all dependencies wired together.
// The Redis client is owned by the container from here on.
func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, version string, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
	}

	svcs, err := newServices(db, redisClient, cfg, log)
	if err != nil {
		return nil, err
	}
	c.svcs = svcs
	c.ucs = newUseCases(svcs, log)
	c.hdlrs = newHandlers(c.ucs, svcs, cfg, handlers.NewHealthHandler(version,
		handlers.HealthCheck{Name: "database", Check: c.pingDatabase},
		handlers.HealthCheck{Name: "redis", Check: c.pingRedis},
	), log)

	c.authMiddleware = middleware.NewAuthMiddleware(c.ucs.authenticateUC, log.Named("auth"))
	c.permissionMiddleware = middleware.NewPermissionMiddleware(svcs.enforcer, log.Named("permission"))
	c.loginLimiter = middleware.NewRateLimiter(svcs.limiter, "login",
		cfg.Auth.LoginLimit.Requests, cfg.Auth.LoginLimit.Window(), log.Named("ratelimit"))

	return c, nil
}

func (c *Container) pingDatabase(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (c *Container) pingRedis(ctx context.Context) error {
	return c.redis.Ping(ctx).Err()
}
