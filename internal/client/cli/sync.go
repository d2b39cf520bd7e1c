package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iudanet/ledgersync/internal/client/feed"
	"github.com/iudanet/ledgersync/internal/client/orchestrator"
	"github.com/iudanet/ledgersync/internal/client/realtime"
	"github.com/iudanet/ledgersync/internal/client/receiver"
	clientsync "github.com/iudanet/ledgersync/internal/client/sync"
)

func (c *Cli) syncCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "sync",
		GroupID: "sync",
		Short:   "Upload pending changes and pull remote ones once",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSync(cmd.Context())
		},
	}
}

func (c *Cli) runCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "run",
		GroupID: "sync",
		Short:   "Keep syncing in the background until interrupted",
		Long: `Run the sync engine: upload local changes as they happen, listen for
remote change notifications and pull them. Stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDaemon(cmd.Context())
		},
	}
}

func (c *Cli) newTrigger() *clientsync.Trigger {
	f := feed.New(c.store, feed.Options{
		Limit:          c.cfg.Sync.BatchLimit,
		ResyncInterval: c.cfg.Sync.ResyncInterval,
	}, c.logger)

	cfg := clientsync.DefaultConfig()
	cfg.CallTimeout = c.cfg.Sync.CallTimeout
	return clientsync.NewTrigger(c.api, c.store, f, cfg, c.logger)
}

func (c *Cli) newPuller() *clientsync.Puller {
	return clientsync.NewPuller(c.api, c.store, c.store, c.cfg.Sync.PullLimit, c.logger)
}

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")

	if _, err := c.onlineSession(ctx); err != nil {
		return err
	}

	sum, err := c.newTrigger().DrainOnce(ctx)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	pulled, err := c.newPuller().Pull(ctx)
	if err != nil {
		return fmt.Errorf("pull failed: %w", err)
	}

	c.io.Println()
	c.io.Printf("Uploaded: %d book(s), %d bill(s), %d image(s)\n",
		sum.Books.Pushed, sum.Bills.Pushed, sum.Images.Pushed)
	deleted := sum.Books.Deleted + sum.Bills.Deleted + sum.Images.Deleted
	if deleted > 0 {
		c.io.Printf("Deleted on server: %d\n", deleted)
	}
	c.io.Printf("Pulled:   %d book(s), %d bill(s), %d removed\n", pulled.Books, pulled.Bills, pulled.Removed)

	failed := sum.Books.Failed + sum.Bills.Failed + sum.Images.Failed
	skipped := sum.Books.Skipped + sum.Bills.Skipped + sum.Images.Skipped
	if failed+skipped > 0 {
		c.io.Printf("⚠️  %d failed, %d postponed; they stay pending and will be retried.\n", failed, skipped)
		return nil
	}

	c.io.Println("✓ Synchronization completed successfully!")
	return nil
}

func (c *Cli) runDaemon(ctx context.Context) error {
	session, err := c.onlineSession(ctx)
	if err != nil {
		return err
	}

	deviceID, err := c.store.DeviceID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get device id: %w", err)
	}

	rt := realtime.New(realtime.Options{
		Namespace: c.cfg.Namespace,
		ClientID:  "ledgersync-" + deviceID,
	}, c.logger)

	recv := receiver.New(c.store, rt, receiver.Options{
		DeviceID:   deviceID,
		AckEnabled: c.cfg.Sync.Ack,
	}, c.logger)

	svc := orchestrator.New(orchestrator.Deps{
		API:      c.api,
		Realtime: rt,
		Trigger:  c.newTrigger(),
		Puller:   c.newPuller(),
		Receiver: recv,
		Logger:   c.logger,
	}, orchestrator.Config{
		Broker:              c.cfg.Broker,
		OnlineCheckInterval: c.cfg.Sync.OnlineCheckInterval,
	}, session)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := svc.Start(ctx); err != nil {
		return err
	}
	c.io.Printf("Syncing as %s (device %s). Press Ctrl+C to stop.\n", session.Username, deviceID)

	<-ctx.Done()
	svc.Stop()

	st := svc.Status()
	c.io.Printf("Stopped. Realtime: %s, last pull: %s\n", st.Realtime, formatTime(st.LastPull))
	return nil
}
