package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/phrazzld/recipe-api/internal/service/auth"
	"github.com/spf13/cobra"
)

type issueTokenOptions struct {
	accountID int64
	login     string
	json      bool
}

// issuedTokens is the --json output of issue-token.
type issuedTokens struct {
	AccountID    int64  `json:"accountId"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// NewIssueTokenCommand creates the issue-token command, which mints an access
// and refresh pair with the configured secret. Nothing is checked against the
// database; the gate would accept the result for as long as it is valid.
func NewIssueTokenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &issueTokenOptions{}

	cmd := &cobra.Command{
		Use:   "issue-token",
		Short: "Mint an access and refresh token for an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.accountID <= 0 || opts.login == "" {
				return errors.New("--account-id and --login are required")
			}

			jwtService, err := newJWTService(cmd, rootOpts)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)
			id := auth.Identity{AccountID: opts.accountID, Login: opts.login}
			token, err := jwtService.GenerateToken(ctx, id)
			if err != nil {
				return err
			}
			refresh, err := jwtService.GenerateRefreshToken(ctx, id)
			if err != nil {
				return err
			}

			if opts.json {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(issuedTokens{AccountID: id.AccountID, Token: token, RefreshToken: refresh})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Authorization: Bearer %s\nRefresh-Token: %s\n", token, refresh)
			return err
		},
	}

	cmd.Flags().Int64Var(&opts.accountID, "account-id", 0, "numeric account ID (token subject)")
	cmd.Flags().StringVar(&opts.login, "login", "", "account login")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON instead of headers")

	return cmd
}

// NewIssueResetTokenCommand creates the issue-reset-token command. Support
// staff run it after verifying ownership of the email out of band.
func NewIssueResetTokenCommand(rootOpts *RootOptions) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "issue-reset-token",
		Short: "Mint a password reset token for an email address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return errors.New("--email is required")
			}

			jwtService, err := newJWTService(cmd, rootOpts)
			if err != nil {
				return err
			}

			token, err := jwtService.GenerateResetToken(commandContext(cmd), email)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")

	return cmd
}

func newJWTService(cmd *cobra.Command, opts *RootOptions) (auth.JWTService, error) {
	cfg, _, err := opts.load(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	return jwtService, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
