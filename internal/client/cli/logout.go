package cli

import "github.com/spf13/cobra"

func (c *Cli) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "logout",
		GroupID: "account",
		Short:   "Forget the session on this device (local data is kept)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.auth.Logout(cmd.Context()); err != nil {
				return err
			}
			c.io.Println("✓ Logged out. Local books and bills are kept.")
			return nil
		},
	}
}
