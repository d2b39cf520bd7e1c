package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/ledgersync/internal/validation"
)

func (c *Cli) registerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "register",
		GroupID: "account",
		Short:   "Register a new user on the server",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			return c.runRegister(cmd, username)
		},
	}
	cmd.Flags().StringP("username", "u", "", "Username (prompted if empty)")
	return cmd
}

func (c *Cli) runRegister(cmd *cobra.Command, username string) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	var err error
	if username == "" {
		username, err = c.io.ReadInput("Username: ")
		if err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}
	}

	password, err := c.io.ReadPassword(fmt.Sprintf("Password (min %d chars): ", validation.MinPasswordLen))
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	userID, err := c.auth.Register(cmd.Context(), username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("User ID:  %s\n", userID)
	c.io.Printf("Username: %s\n", username)
	c.io.Println()
	c.io.Println("Please run 'ledgersync login' to start syncing.")
	return nil
}
