package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/phrazzld/recipe-api/internal/platform/database"
	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the migrate command and its up, down and status subcommands.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd, rootOpts, func(ctx context.Context, m *database.Migrator) error {
				v, err := m.Up(ctx)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", v)
				return err
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd, rootOpts, func(ctx context.Context, m *database.Migrator) error {
				v, err := m.Down(ctx)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", v)
				return err
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd, rootOpts, func(ctx context.Context, m *database.Migrator) error {
				statuses, err := m.Status(ctx)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
				for _, s := range statuses {
					applied := "-"
					if !s.AppliedAt.IsZero() {
						applied = s.AppliedAt.UTC().Format(time.RFC3339)
					}
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
				}
				return tw.Flush()
			})
		},
	})

	return cmd
}

func withMigrator(cmd *cobra.Command, opts *RootOptions, fn func(ctx context.Context, m *database.Migrator) error) error {
	cfg, l, err := opts.load(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)

	db, dialect, err := database.Open(ctx, cfg.Database, l)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	m, err := database.NewMigrator(db, dialect, l)
	if err != nil {
		return err
	}
	return fn(ctx, m)
}
