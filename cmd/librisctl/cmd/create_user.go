package cmd

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dastas/libris-core/internal/auth"
)

var createUserRole string

func init() {
	createUserCmd.Flags().StringVar(&createUserRole, "role", "reader", "Account role: admin, librarian, reader")
	rootCmd.AddCommand(createUserCmd)
}

var createUserCmd = &cobra.Command{
	Use:   "create-user <username> <email>",
	Short: "Create a user account",
	Long: `Create a user account with any role, including admin.

The password is prompted interactively and never echoed.

Examples:
  librisctl create-user dana dana@example.org --role librarian
  librisctl create-user root admin@example.org --role admin`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, email := args[0], args[1]

		if !auth.IsValidUsername(username) {
			return fmt.Errorf("invalid username %q", username)
		}
		if !auth.IsValidEmail(email) {
			return fmt.Errorf("invalid email %q", email)
		}

		role := auth.Role(createUserRole)
		if !auth.IsValidRole(role) {
			return fmt.Errorf("unknown role %q (valid: admin, librarian, reader)", createUserRole)
		}

		password, err := readPassword("Password: ")
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		if len(password) < auth.MinPasswordLength {
			return fmt.Errorf("password must be at least %d characters", auth.MinPasswordLength)
		}

		confirm, err := readPassword("Confirm password: ")
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			return fmt.Errorf("hashing password: %w", err)
		}

		user := &auth.User{
			Username:     username,
			Email:        email,
			PasswordHash: hash,
			Role:         role,
		}

		if err := userRepo.Create(cmd.Context(), user); err != nil {
			return fmt.Errorf("creating user: %w", err)
		}

		fmt.Printf("Created %s account %q (id %d)\n", user.Role, user.Username, user.ID)
		return nil
	},
}

// readPassword reads a password from the terminal without echoing it.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println()
	return strings.TrimSpace(string(raw)), nil
}
