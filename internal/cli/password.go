package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phrazzld/recipe-api/internal/service/auth"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type hashPasswordOptions struct {
	cost  int
	stdin bool
}

// NewHashPasswordCommand creates the hash-password command. It prints a bcrypt
// hash suitable for seeding the accounts table by hand.
func NewHashPasswordCommand(_ *RootOptions) *cobra.Command {
	opts := &hashPasswordOptions{}

	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Print the bcrypt hash of a password",
		Long: `Print the bcrypt hash of a password.

The password is read from the terminal without echo, or from the first line of
standard input with --stdin. It is never accepted as an argument.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hasher, err := auth.NewBcryptHasher(opts.cost)
			if err != nil {
				return err
			}

			password, err := promptPassword(cmd, opts.stdin)
			if err != nil {
				return err
			}

			hash, err := hasher.Encode(password)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}

	cmd.Flags().IntVar(&opts.cost, "cost", 10, "bcrypt cost")
	cmd.Flags().BoolVar(&opts.stdin, "stdin", false, "read the password from standard input")

	return cmd
}

func promptPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	fd := int(os.Stdin.Fd())
	if fromStdin || !isTerminal(fd) {
		return readLine(cmd.InOrStdin())
	}

	if _, err := fmt.Fprint(cmd.ErrOrStderr(), "Password: "); err != nil {
		return "", err
	}
	first, err := readPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if _, err := fmt.Fprint(cmd.ErrOrStderr(), "Confirm password: "); err != nil {
		return "", err
	}
	second, err := readPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	if len(first) == 0 {
		return "", errors.New("password must not be empty")
	}
	return string(first), nil
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("password must not be empty")
	}
	return line, nil
}
