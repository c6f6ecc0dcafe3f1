// Package console implements the staff CLI commands. They run the same use
// cases as the console server, authenticated with the token saved by login.
package console

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	auditApp "github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/application/common/listing"
	"github.com/codearena/arena-admin/internal/application/common/staff"
	"github.com/codearena/arena-admin/internal/infrastructure/config"
	"github.com/codearena/arena-admin/internal/interfaces/cli/credentials"
	"github.com/codearena/arena-admin/internal/interfaces/cli/output"
	"github.com/codearena/arena-admin/internal/shared/biztime"
	"github.com/codearena/arena-admin/internal/shared/goroutine"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/sdk/platform"
)

// Options are the persistent flags shared by every console command.
type Options struct {
	ConfigPath      string
	CredentialsPath string
	Output          string
	Verbose         bool
}

// RegisterFlags adds the shared flags to root.
func (o *Options) RegisterFlags(root *cobra.Command) {
	root.PersistentFlags().StringVarP(&o.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	root.PersistentFlags().StringVar(&o.CredentialsPath, "credentials", "", "Path to credentials file (default: ~/.config/arena-admin/credentials.yaml)")
	root.PersistentFlags().StringVarP(&o.Output, "output", "o", "table", "Output format: table, json or yaml")
	root.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false, "Log debug output to stderr")
}

// Commands returns every console command.
func Commands(o *Options) []*cobra.Command {
	return []*cobra.Command{
		newLoginCommand(o),
		newLogoutCommand(o),
		newUsersCommand(o),
		newLanguagesCommand(o),
		newPlansCommand(o),
		newTransactionsCommand(o),
		newSolutionsCommand(o),
		newPostsCommand(o),
		newCommentsCommand(o),
		newPromptsCommand(o),
		newReportsCommand(o),
		newDashboardCommand(o),
	}
}

// App is what a console command runs against.
type App struct {
	cfg     *config.Config
	creds   *credentials.Credentials
	client  *platform.Client
	out     *output.Printer
	log     logger.Interface
	fetcher *listing.Fetcher
	sink    auditApp.Sink
	workers *goroutine.Group
}

func (o *Options) credentialStore() (*credentials.Store, error) {
	path := o.CredentialsPath
	if path == "" {
		var err error
		if path, err = credentials.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return credentials.NewStore(path), nil
}

// setup loads configuration, the logger and the printer.
func (o *Options) setup() (*config.Config, *output.Printer, logger.Interface, error) {
	format, err := output.ParseFormat(o.Output)
	if err != nil {
		return nil, nil, nil, err
	}

	cfg, err := config.Load("", o.ConfigPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, nil, err
	}

	logCfg := cfg.Logger
	logCfg.OutputPath = "stderr"
	if err := logger.Init(&logCfg, o.Verbose); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if o.Verbose {
		logger.SetLevel(slog.LevelDebug)
	} else {
		logger.SetLevel(slog.LevelWarn)
	}

	return cfg, output.NewPrinter(os.Stdout, format), logger.NewLogger(), nil
}

func (o *Options) open() (*App, error) {
	cfg, out, log, err := o.setup()
	if err != nil {
		return nil, err
	}

	store, err := o.credentialStore()
	if err != nil {
		return nil, err
	}
	creds, err := store.Load()
	if err != nil {
		return nil, err
	}

	client := platform.NewClient(creds.BaseURL,
		platform.WithTimeout(cfg.Platform.Timeout()),
		platform.WithRateLimit(cfg.Platform.RateLimit, cfg.Platform.RateBurst),
		platform.WithStaticToken(creds.AccessToken),
	)

	return &App{
		cfg:     cfg,
		creds:   creds,
		client:  client,
		out:     out,
		log:     log,
		fetcher: listing.NewFetcher(),
		sink:    newLogSink(log.Named("audit")),
		workers: goroutine.NewGroup(log),
	}, nil
}

// Context binds the signed-in staff member so audit records name them.
func (a *App) Context(ctx context.Context) context.Context {
	return staff.WithActor(ctx, staff.Actor{ID: a.creds.StaffID, Username: a.creds.Username, Role: a.creds.Role})
}

// Close waits for background notifications before the process exits.
func (a *App) Close() {
	a.workers.Wait()
}

type runFunc func(ctx context.Context, app *App, args []string) error

// run opens the App around fn.
func (o *Options) run(fn runFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := o.open()
		if err != nil {
			return err
		}
		defer app.Close()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return fn(app.Context(ctx), app, args)
	}
}

// logSink writes audit records to the log; the CLI has no console database.
type logSink struct {
	log logger.Interface
}

func newLogSink(log logger.Interface) *logSink {
	return &logSink{log: log}
}

func (s *logSink) Record(ctx context.Context, action auditApp.Action, err error) {
	actor := staff.FromContext(ctx)
	kv := []any{
		"action", action.Name,
		"resource", action.Resource,
		"resource_id", action.ResourceID,
		"actor", actor.Username,
		"outcome", auditApp.OutcomeOf(err),
	}
	if err != nil {
		s.log.Warnw("audit", append(kv, "error", err)...)
		return
	}
	s.log.Infow("audit", kv...)
}
