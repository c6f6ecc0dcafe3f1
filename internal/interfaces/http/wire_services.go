package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	auditApp "github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/application/common/listing"
	discussUsecases "github.com/codearena/arena-admin/internal/application/discuss/usecases"
	languageUsecases "github.com/codearena/arena-admin/internal/application/language/usecases"
	"github.com/codearena/arena-admin/internal/application/optimistic"
	planUsecases "github.com/codearena/arena-admin/internal/application/plan/usecases"
	solutionUsecases "github.com/codearena/arena-admin/internal/application/solution/usecases"
	domainaudit "github.com/codearena/arena-admin/internal/domain/audit"
	"github.com/codearena/arena-admin/internal/domain/session"
	"github.com/codearena/arena-admin/internal/infrastructure/auth"
	"github.com/codearena/arena-admin/internal/infrastructure/cache"
	"github.com/codearena/arena-admin/internal/infrastructure/config"
	"github.com/codearena/arena-admin/internal/infrastructure/email"
	"github.com/codearena/arena-admin/internal/infrastructure/metrics"
	"github.com/codearena/arena-admin/internal/infrastructure/permission"
	"github.com/codearena/arena-admin/internal/infrastructure/ratelimit"
	"github.com/codearena/arena-admin/internal/infrastructure/repository"
	"github.com/codearena/arena-admin/internal/shared/goroutine"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/services/markdown"
	"github.com/codearena/arena-admin/sdk/platform"
)

const (
	sessionKeyPrefix   = "arena:session:"
	mirrorKeyPrefix    = "arena:mirror:"
	rateLimitKeyPrefix = "arena:ratelimit:"
)

// services holds infrastructure shared by the use cases.
type services struct {
	platform  *platform.Client
	metrics   *metrics.Metrics
	jwt       *auth.JWTService
	sessions  session.Repository
	enforcer  *permission.Enforcer
	auditRepo domainaudit.Repository
	recorder  *auditApp.Recorder
	fetcher   *listing.Fetcher
	renderer  markdown.Renderer
	workers   *goroutine.Group
	notifier  email.Notifier
	limiter   ratelimit.RateLimiter

	// Optimistic mirrors
	languages     *languageUsecases.LanguageMutator
	features      *planUsecases.FeatureMutator
	solutionVotes *solutionUsecases.VoteMutator
	commentVotes  *discussUsecases.VoteMutator
}

// OpenRedis creates the Redis client and checks the connection.
func OpenRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Infow("redis connection established", "addr", cfg.Redis.GetAddr())

	return client, nil
}

func newServices(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*services, error) {
	m := metrics.New()

	platformClient := platform.NewClient(cfg.Platform.BaseURL,
		platform.WithTimeout(cfg.Platform.Timeout()),
		platform.WithRateLimit(cfg.Platform.RateLimit, cfg.Platform.RateBurst),
		platform.WithObserver(m.ObservePlatform),
	)

	enforcer, err := permission.NewEnforcer(db, log.Named("permission"))
	if err != nil {
		return nil, fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.Seed(); err != nil {
		return nil, fmt.Errorf("failed to seed permission policies: %w", err)
	}

	auditRepo := repository.NewAuditRepository(db, log)
	ttl := cfg.Platform.MirrorTTL()

	return &services{
		platform:  platformClient,
		metrics:   m,
		jwt:       auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays),
		sessions:  cache.NewRedisSessionStore(redisClient, sessionKeyPrefix),
		enforcer:  enforcer,
		auditRepo: auditRepo,
		recorder:  auditApp.NewRecorder(auditRepo, log.Named("audit")),
		fetcher:   listing.NewFetcher(),
		renderer:  markdown.NewRenderer(),
		workers:   goroutine.NewGroup(log),
		notifier:  email.NewNotifier(cfg.Email, log.Named("email")),
		limiter:   ratelimit.NewRedisRateLimiter(redisClient, rateLimitKeyPrefix),

		languages: newMutator[[]platform.ProgrammingLanguage](
			cache.NewRedisMirrorStore[[]platform.ProgrammingLanguage](redisClient, mirrorKeyPrefix+"languages:", ttl),
			m.RollbackHook("language"), log),
		features: newMutator[[]platform.SubscriptionFeature](
			cache.NewRedisMirrorStore[[]platform.SubscriptionFeature](redisClient, mirrorKeyPrefix+"features:", ttl),
			m.RollbackHook("feature"), log),
		solutionVotes: newMutator[optimistic.VoteState](
			cache.NewRedisMirrorStore[optimistic.VoteState](redisClient, mirrorKeyPrefix+"votes:solution:", ttl),
			m.RollbackHook("solution_vote"), log),
		commentVotes: newMutator[optimistic.VoteState](
			cache.NewRedisMirrorStore[optimistic.VoteState](redisClient, mirrorKeyPrefix+"votes:comment:", ttl),
			m.RollbackHook("comment_vote"), log),
	}, nil
}

func newMutator[T any](store optimistic.Store[T], onRollback func(string), log logger.Interface) *optimistic.Mutator[T] {
	return optimistic.NewMutator(store, log.Named("optimistic"), optimistic.WithRollbackHook[T](onRollback))
}
