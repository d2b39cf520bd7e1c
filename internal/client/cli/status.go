package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/ledgersync/internal/client/auth"
)

type statusView struct {
	Server     string
	Username   string
	UserID     string
	ActiveBook string
	ExpiresAt  string
	LastPull   string
	Books      int
	Bills      int
	Images     int
	Expired    bool
}

func (c *Cli) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		GroupID: "account",
		Short:   "Show session and pending sync state",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStatus(cmd)
		},
	}
}

func (c *Cli) runStatus(cmd *cobra.Command) error {
	ctx := cmd.Context()
	view := statusView{Server: c.cfg.Server}

	session, err := c.auth.Current(ctx)
	switch {
	case errors.Is(err, auth.ErrNotSignedIn):
	case errors.Is(err, auth.ErrSessionExpired):
		view.Expired = true
	case err != nil:
		return err
	}
	if session != nil {
		view.Username = session.Username
		view.UserID = session.UserID
		view.ActiveBook = session.ActiveBookID
		if session.ExpiresAt > 0 {
			view.ExpiresAt = time.Unix(session.ExpiresAt, 0).Format(time.RFC3339)
		}
		if book, err := c.ledger.GetBook(ctx, session.ActiveBookID); err == nil {
			view.ActiveBook = fmt.Sprintf("%s (%s)", book.Name, book.ID)
		}
	}

	books, err := c.store.ListDirtyBooks(ctx, 0)
	if err != nil {
		return err
	}
	bills, err := c.store.ListDirtyBills(ctx, 0)
	if err != nil {
		return err
	}
	images, err := c.store.ListDirtyImages(ctx, 0)
	if err != nil {
		return err
	}
	view.Books, view.Bills, view.Images = len(books), len(bills), len(images)

	if ts, err := c.store.GetLastSyncTimestamp(ctx); err == nil && ts > 0 {
		view.LastPull = time.UnixMilli(ts).Format(time.RFC3339)
	}

	return statusTmpl.Execute(c.io, view)
}
