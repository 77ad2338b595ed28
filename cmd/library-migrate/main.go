// Command library-migrate applies the embedded goose migrations to the postgres database
// configured via LIBRARY_POSTGRES_DSN.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-books-go/library/shell/config"
	"github.com/AntonStoeckl/library-books-go/migrations"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:          "library-migrate",
		Short:        "Manage the schema of the library events table",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional .env file to load")

	withProvider := func(run func(cmd *cobra.Command, provider *goose.Provider, logger *slog.Logger) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}

			logger := config.NewLogger(cfg.LogLevel, os.Stderr)

			if cfg.PostgresDSN == "" {
				return config.ErrMissingPostgresDSN
			}

			db, err := config.NewSQLDB(cmd.Context(), cfg.PostgresDSN)
			if err != nil {
				logger.Error("connecting to postgres failed", "error", err)
				return err
			}
			defer func() { _ = db.Close() }()

			provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
			if err != nil {
				return err
			}

			return run(cmd, provider, logger)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withProvider(func(cmd *cobra.Command, provider *goose.Provider, logger *slog.Logger) error {
				results, err := provider.Up(cmd.Context())
				for _, result := range results {
					logger.Info("migration applied", "version", result.Source.Version, "duration_ms", result.Duration.Milliseconds())
				}
				if err != nil {
					logger.Error("migrating up failed", "error", err)
				}
				return err
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: withProvider(func(cmd *cobra.Command, provider *goose.Provider, logger *slog.Logger) error {
				result, err := provider.Down(cmd.Context())
				if err != nil {
					logger.Error("migrating down failed", "error", err)
					return err
				}
				logger.Info("migration rolled back", "version", result.Source.Version)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show which migrations are applied",
			Args:  cobra.NoArgs,
			RunE: withProvider(func(cmd *cobra.Command, provider *goose.Provider, _ *slog.Logger) error {
				statuses, err := provider.Status(cmd.Context())
				if err != nil {
					return err
				}
				for _, status := range statuses {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%05d %-8s %s\n", status.Source.Version, status.State, status.Source.Path)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: withProvider(func(cmd *cobra.Command, provider *goose.Provider, _ *slog.Logger) error {
				version, err := provider.GetDBVersion(cmd.Context())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), version)
				return nil
			}),
		},
	)

	return root
}
