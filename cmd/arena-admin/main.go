package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/codearena/arena-admin/internal/interfaces/cli/console"
	"github.com/codearena/arena-admin/internal/interfaces/cli/migrate"
	"github.com/codearena/arena-admin/internal/interfaces/cli/server"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// @title arena-admin API
// @version 1.0
// @description Staff console API for the CodeArena platform.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	opts := &console.Options{}

	rootCmd := &cobra.Command{
		Use:           "arena-admin",
		Short:         "Administration console for the CodeArena platform",
		Long:          `arena-admin runs the staff console API server and offers the same moderation and catalog commands from the terminal.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	opts.RegisterFlags(rootCmd)

	rootCmd.AddCommand(
		server.NewCommand(version, &opts.ConfigPath),
		migrate.NewCommand(&opts.ConfigPath),
	)
	rootCmd.AddCommand(console.Commands(opts)...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
