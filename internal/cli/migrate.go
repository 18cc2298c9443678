package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/carbonfootprint-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carbonfootprint-backend/internal/config"
	"github.com/heartmarshall/carbonfootprint-backend/migrations"
)

type migrationRow struct {
	Version  int64  `json:"version"            yaml:"version"`
	Source   string `json:"source"             yaml:"source"`
	State    string `json:"state"              yaml:"state"`
	Duration string `json:"duration,omitempty" yaml:"duration,omitempty"`
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL schema",
		Long:  "Applies or rolls back the embedded goose migrations against database.dsn (DATABASE_DSN).",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd, func(ctx context.Context, m *postgres.Migrator) error {
					results, err := m.Up(ctx)
					if err != nil {
						return err
					}
					rows := make([]migrationRow, 0, len(results))
					for _, r := range results {
						rows = append(rows, migrationRow{
							Version:  r.Source.Version,
							Source:   r.Source.Path,
							State:    "applied",
							Duration: r.Duration.String(),
						})
					}
					return writeOutput(cmd, rows)
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd, func(ctx context.Context, m *postgres.Migrator) error {
					r, err := m.Down(ctx)
					if err != nil {
						return err
					}
					return writeOutput(cmd, []migrationRow{{
						Version:  r.Source.Version,
						Source:   r.Source.Path,
						State:    "rolled back",
						Duration: r.Duration.String(),
					}})
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show which migrations are applied",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd, func(ctx context.Context, m *postgres.Migrator) error {
					statuses, err := m.Status(ctx)
					if err != nil {
						return err
					}
					rows := make([]migrationRow, 0, len(statuses))
					for _, s := range statuses {
						rows = append(rows, migrationRow{
							Version: s.Source.Version,
							Source:  s.Source.Path,
							State:   string(s.State),
						})
					}
					return writeOutput(cmd, rows)
				})
			},
		},
	)

	return cmd
}

const migrateTimeout = 2 * time.Minute

// withMigrator opens a pool from the loaded configuration, runs fn and
// releases everything.
func withMigrator(cmd *cobra.Command, fn func(ctx context.Context, m *postgres.Migrator) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Database.DSN == "" {
		return errors.New("database.dsn (DATABASE_DSN) is required for migrations")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	m, err := postgres.NewMigrator(pool, migrations.FS)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := fn(ctx, m); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
