package cli

import (
	"github.com/spf13/cobra"
)

func (c *Cli) imageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "image",
		GroupID: "ledger",
		Short:   "Attach photos to bills",
	}

	add := &cobra.Command{
		Use:   "add <bill-id> <file>",
		Short: "Attach a file to a bill",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, err := c.session(ctx)
			if err != nil {
				return err
			}

			img, err := c.ledger.AddImage(ctx, session.UserID, args[0], args[1])
			if err != nil {
				return err
			}
			c.io.Printf("✓ Image attached: %s (%s, %d bytes)\n", img.FileName, img.MimeType, img.Size)
			c.io.Printf("ID: %s\n", img.ID)
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list <bill-id>",
		Short: "List images of a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			images, err := c.ledger.ListImages(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(images) == 0 {
				c.io.Println("No images found.")
				return nil
			}
			for i, img := range images {
				state := "uploaded"
				if img.IsDirty() {
					state = "pending"
				}
				c.io.Printf("%d. %s\n", i+1, img.FileName)
				c.io.Printf("   ID:     %s\n", img.ID)
				c.io.Printf("   Type:   %s, %d bytes\n", img.MimeType, img.Size)
				c.io.Printf("   Status: %s\n", state)
			}
			return nil
		},
	}

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Detach and delete an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.ledger.DeleteImage(cmd.Context(), args[0]); err != nil {
				return err
			}
			c.io.Printf("✓ Image %s deleted\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(add, list, rm)
	return cmd
}
