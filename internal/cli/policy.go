package cli

import (
	"fmt"

	"github.com/phrazzld/recipe-api/internal/policy"
	"github.com/spf13/cobra"
)

// NewPolicyCommand creates the policy command with dump and check subcommands.
// Neither needs a configuration file.
func NewPolicyCommand(_ *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Inspect the route policy table",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Print the route policy table as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return policy.Dump(cmd.OutOrStdout(), policy.DefaultRules())
		},
	})

	var devRoutes bool
	check := &cobra.Command{
		Use:   "check <method> <path>",
		Short: "Show which rule decides a request",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := policy.NewDefaultTable(policy.Options{DevRoutesEnabled: devRoutes})
			match := table.Lookup(args[0], args[1])

			rule := "default"
			if match.Index >= 0 {
				rule = fmt.Sprintf("rule %d", match.Index)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s (%s)\n", args[0], args[1], match.Decision, rule)
			return err
		},
	}
	check.Flags().BoolVar(&devRoutes, "dev-routes", false, "evaluate with development routes enabled")
	cmd.AddCommand(check)

	return cmd
}
