package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/codearena/arena-admin/internal/infrastructure/config"
	"github.com/codearena/arena-admin/internal/infrastructure/database"
	"github.com/codearena/arena-admin/internal/infrastructure/migration"
	"github.com/codearena/arena-admin/internal/shared/logger"
)

// NewCommand returns the "migrate" command tree. configPath points at the
// root's --config flag.
func NewCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage the console database schema (audit log and permission policies).`,
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		Args:  cobra.NoArgs,
		RunE: withStrategy(configPath, func(cmd *cobra.Command, db *gorm.DB, strategy *migration.GooseStrategy, log logger.Interface) error {
			log.Infow("running down migrations", "steps", steps)
			if err := strategy.MigrateDown(db, steps); err != nil {
				return fmt.Errorf("down migration failed: %w", err)
			}
			log.Infow("down migration completed successfully")
			return nil
		}),
	}
	down.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Run all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withStrategy(configPath, func(cmd *cobra.Command, db *gorm.DB, strategy *migration.GooseStrategy, log logger.Interface) error {
				log.Infow("running up migrations")
				if err := strategy.Migrate(db); err != nil {
					return fmt.Errorf("migration failed: %w", err)
				}
				log.Infow("migrations completed successfully")
				return nil
			}),
		},
		down,
		&cobra.Command{
			Use:   "status",
			Short: "Show migration status",
			Args:  cobra.NoArgs,
			RunE: withStrategy(configPath, func(cmd *cobra.Command, db *gorm.DB, strategy *migration.GooseStrategy, log logger.Interface) error {
				version, err := strategy.GetVersion(db)
				if err != nil {
					return fmt.Errorf("failed to get migration version: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Driver:          %s\nCurrent version: %d\n\n", strategy.Driver(), version)
				if err := strategy.Status(db); err != nil {
					return fmt.Errorf("failed to get detailed status: %w", err)
				}
				return nil
			}),
		},
	)

	return cmd
}

type strategyFunc func(cmd *cobra.Command, db *gorm.DB, strategy *migration.GooseStrategy, log logger.Interface) error

func withStrategy(configPath *string, fn strategyFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		var path string
		if configPath != nil {
			path = *configPath
		}
		cfg, err := config.Load("", path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logCfg := cfg.Logger
		logCfg.OutputPath = "stderr"
		if err := logger.Init(&logCfg, false); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		log := logger.NewLogger()

		db, err := database.Open(&cfg.Database)
		if err != nil {
			return err
		}
		defer func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}()

		return fn(cmd, db, migration.NewGooseStrategy(cfg.Database.Driver, log), log)
	}
}
