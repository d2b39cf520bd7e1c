package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (c *Cli) loginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "login",
		GroupID: "account",
		Short:   "Sign in and store the session on this device",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			return c.runLogin(cmd, username)
		},
	}
	cmd.Flags().StringP("username", "u", "", "Username (prompted if empty)")
	return cmd
}

func (c *Cli) runLogin(cmd *cobra.Command, username string) error {
	var err error
	if username == "" {
		username, err = c.io.ReadInput("Username: ")
		if err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	session, err := c.auth.Login(cmd.Context(), username, password)
	if err != nil {
		return err
	}

	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", session.Username)
	c.io.Printf("User ID:  %s\n", session.UserID)
	if session.ExpiresAt > 0 {
		c.io.Printf("Session expires: %s\n", time.Unix(session.ExpiresAt, 0).Format(time.RFC3339))
	}
	if session.ActiveBookID != "" {
		c.io.Printf("Active book: %s\n", session.ActiveBookID)
	}
	return nil
}
