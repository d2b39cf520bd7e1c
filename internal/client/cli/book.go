package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/ledgersync/internal/models"
)

func (c *Cli) bookCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "book",
		GroupID: "ledger",
		Short:   "Manage books",
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a book (becomes active if none is)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookType, _ := cmd.Flags().GetString("type")
			return c.runBookAdd(cmd, args[0], bookType)
		},
	}
	add.Flags().String("type", "", "Free-form book type")

	list := &cobra.Command{
		Use:   "list",
		Short: "List books (* marks the active one)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBookList(cmd)
		},
	}

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a book with all its bills",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			return c.runBookRemove(cmd, args[0], yes)
		},
	}
	rm.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")

	use := &cobra.Command{
		Use:   "use <id>",
		Short: "Make a book active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBookUse(cmd, args[0])
		},
	}

	rename := &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a book",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := c.ledger.UpdateBook(cmd.Context(), args[0], func(b *models.Book) {
				b.Name = args[1]
			})
			if err != nil {
				return err
			}
			c.io.Printf("✓ Book renamed to %q\n", book.Name)
			return nil
		},
	}

	cmd.AddCommand(add, list, rm, use, rename)
	return cmd
}

func (c *Cli) runBookAdd(cmd *cobra.Command, name, bookType string) error {
	ctx := cmd.Context()
	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	book, err := c.ledger.CreateBook(ctx, session.UserID, name, bookType)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Book %q created\n", book.Name)
	c.io.Printf("ID: %s\n", book.ID)

	if session.ActiveBookID == "" {
		if _, err := c.auth.UseBook(ctx, book.ID); err != nil {
			return err
		}
		c.io.Println("Book is now active.")
	}
	return nil
}

func (c *Cli) runBookList(cmd *cobra.Command) error {
	ctx := cmd.Context()

	books, err := c.ledger.ListBooks(ctx)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		c.io.Println("No books found.")
		c.io.Println()
		c.io.Println("Use 'ledgersync book add <name>' to create your first book.")
		return nil
	}

	active := ""
	if session, err := c.auth.Current(ctx); session != nil && err == nil {
		active = session.ActiveBookID
	}

	c.io.Printf("Found %d book(s):\n\n", len(books))
	for _, b := range books {
		view := struct {
			Book   *models.Book
			Active bool
		}{Book: b, Active: b.ID == active}
		if err := bookTmpl.Execute(c.io, view); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cli) runBookRemove(cmd *cobra.Command, id string, yes bool) error {
	ctx := cmd.Context()

	book, err := c.ledger.GetBook(ctx, id)
	if err != nil {
		return err
	}
	if !yes {
		ok, err := c.io.Confirm(fmt.Sprintf("Delete book %q with all its bills?", book.Name))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			c.io.Println("Cancelled")
			return nil
		}
	}

	if err := c.ledger.DeleteBook(ctx, id); err != nil {
		return err
	}

	// истёкшая сессия тоже хранит активную книгу
	if session, _ := c.auth.Current(ctx); session != nil && session.ActiveBookID == id {
		if _, err := c.auth.UseBook(ctx, ""); err != nil {
			return err
		}
	}

	c.io.Printf("✓ Book %s deleted\n", id)
	return nil
}

func (c *Cli) runBookUse(cmd *cobra.Command, id string) error {
	ctx := cmd.Context()

	book, err := c.ledger.GetBook(ctx, id)
	if err != nil {
		return err
	}
	if _, err := c.auth.UseBook(ctx, book.ID); err != nil {
		return err
	}

	c.io.Printf("✓ Active book: %s (%s)\n", book.Name, book.ID)
	return nil
}
