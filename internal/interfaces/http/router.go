package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/codearena/arena-admin/docs"
	"github.com/codearena/arena-admin/internal/infrastructure/config"
	"github.com/codearena/arena-admin/internal/interfaces/http/middleware"
	"github.com/codearena/arena-admin/internal/interfaces/http/routes"
	"github.com/codearena/arena-admin/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, version string, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, redisClient, cfg, version, log)
	if err != nil {
		return nil, fmt.Errorf("failed to wire container: %w", err)
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.Metrics(r.svcs.metrics))

	r.engine.GET("/healthz", r.hdlrs.healthHandler.Healthz)
	r.engine.GET("/metrics", gin.WrapH(r.svcs.metrics.Handler()))
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.hdlrs.authHandler,
		AuthMiddleware: r.authMiddleware,
		LoginLimiter:   r.loginLimiter,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		UserHandler:          r.hdlrs.userHandler,
		LanguageHandler:      r.hdlrs.languageHandler,
		PlanHandler:          r.hdlrs.planHandler,
		TransactionHandler:   r.hdlrs.transactionHandler,
		SolutionHandler:      r.hdlrs.solutionHandler,
		DiscussHandler:       r.hdlrs.discussHandler,
		PromptHandler:        r.hdlrs.promptHandler,
		ReportHandler:        r.hdlrs.reportHandler,
		DashboardHandler:     r.hdlrs.dashboardHandler,
		AuditHandler:         r.hdlrs.auditHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Shutdown waits for background notifications and releases Redis.
func (r *Router) Shutdown(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		r.svcs.workers.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		r.log.Warnw("shutdown deadline reached before background tasks finished")
	}

	if err := r.redis.Close(); err != nil {
		r.log.Warnw("failed to close redis", "error", err)
	}
	r.log.Infow("router shutdown complete")
}
