// Package cli implements the recipe-admin command line: schema migrations,
// offline password hashing, token minting for support work and a dump of the
// route policy table.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/recipe-api/internal/config"
	"github.com/phrazzld/recipe-api/internal/platform/logger"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
}

// NewRootCommand creates the root command for recipe-admin.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "recipe-admin",
		Short:         "Administrative tasks for the recipe API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log at debug level")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewHashPasswordCommand(opts))
	cmd.AddCommand(NewIssueTokenCommand(opts))
	cmd.AddCommand(NewIssueResetTokenCommand(opts))
	cmd.AddCommand(NewPolicyCommand(opts))

	return cmd
}

// load reads configuration and builds a logger writing to w, which is the
// command's stderr so machine-readable output on stdout stays clean.
func (o *RootOptions) load(w io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	server := cfg.Server
	if o.Verbose {
		server.LogLevel = "debug"
	}
	l, err := logger.SetupWithWriter(server, w)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	return cfg, l, nil
}
