package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/codearena/arena-admin/internal/infrastructure/config"
	"github.com/codearena/arena-admin/internal/infrastructure/database"
	"github.com/codearena/arena-admin/internal/infrastructure/migration"
	httpRouter "github.com/codearena/arena-admin/internal/interfaces/http"
	"github.com/codearena/arena-admin/internal/shared/biztime"
	"github.com/codearena/arena-admin/internal/shared/logger"
)

const shutdownTimeout = 30 * time.Second

type options struct {
	env                string
	configPath         *string
	autoMigrate        bool
	skipMigrationCheck bool
}

// NewCommand returns the "server" command. configPath points at the root's
// --config flag; version is reported by /healthz.
func NewCommand(version string, configPath *string) *cobra.Command {
	o := &options{configPath: configPath}

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the admin console HTTP server",
		Long:  `Start the admin console API: staff sessions, audit log and the platform management endpoints.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), o, version)
		},
	}

	cmd.Flags().StringVarP(&o.env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&o.autoMigrate, "auto-migrate", false, "Run pending database migrations on startup")
	cmd.Flags().BoolVar(&o.skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(ctx context.Context, o *options, version string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		o.env = envVar
	}
	ginMode := mapEnvToGinMode(o.env)

	var configPath string
	if o.configPath != nil {
		configPath = *o.configPath
	}
	cfg, err := config.Load(ginMode, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, ginMode == gin.DebugMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return err
	}
	log := logger.NewLogger()

	log.Infow("starting server",
		"environment", o.env,
		"version", version,
		"auto_migrate", o.autoMigrate)

	gin.SetMode(ginMode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := handleMigrations(o, cfg.Database.Driver, log); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	redisClient, err := httpRouter.OpenRedis(cfg, log)
	if err != nil {
		return err
	}

	router, err := httpRouter.NewRouter(database.Get(), redisClient, cfg, version, log)
	if err != nil {
		_ = redisClient.Close()
		return fmt.Errorf("failed to build router: %w", err)
	}
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server starting", "address", srv.Addr, "mode", ginMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serveErr:
		router.Shutdown(context.Background())
		return fmt.Errorf("failed to start server: %w", err)
	case <-sigCtx.Done():
	}

	log.Infow("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		router.Shutdown(shutdownCtx)
		return err
	}
	router.Shutdown(shutdownCtx)

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(o *options, driver string, log logger.Interface) error {
	if o.skipMigrationCheck {
		log.Infow("skipping migration check")
		return nil
	}

	strategy := migration.NewGooseStrategy(driver, log)

	if o.autoMigrate {
		if o.env == "production" {
			log.Warnw("auto-migration is enabled in production environment")
		}
		log.Infow("running auto-migration")
		if err := strategy.Migrate(database.Get()); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		log.Infow("auto-migration completed successfully")
		return nil
	}

	version, err := strategy.GetVersion(database.Get())
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	if version == 0 {
		log.Warnw("database has no migrations applied; run `arena-admin migrate up` or start with --auto-migrate")
		return nil
	}
	log.Infow("current migration version", "version", version)
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
