// Package cli implements the ledgersync command line client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/ledgersync/internal/client/api"
	"github.com/iudanet/ledgersync/internal/client/auth"
	"github.com/iudanet/ledgersync/internal/client/config"
	"github.com/iudanet/ledgersync/internal/client/iocli"
	"github.com/iudanet/ledgersync/internal/client/ledger"
	"github.com/iudanet/ledgersync/internal/client/storage"
	"github.com/iudanet/ledgersync/internal/client/storage/boltdb"
	"github.com/iudanet/ledgersync/internal/logging"
)

// BuildInfo версия клиента, задаётся через ldflags
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// Cli собирает зависимости команд. Поля, заданные заранее (в тестах),
// не пересоздаются при запуске команды.
type Cli struct {
	io      iocli.IO
	v       *viper.Viper
	cfg     *config.Config
	logger  *slog.Logger
	store   *boltdb.Storage
	api     *api.Client
	auth    *auth.Service
	ledger  *ledger.Service
	closers []io.Closer
	build   BuildInfo
}

// New creates the CLI.
func New(io iocli.IO, build BuildInfo) *Cli {
	return &Cli{io: io, v: viper.New(), build: build}
}

// Command builds the cobra command tree.
func (c *Cli) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "ledgersync",
		Short: "Local-first bookkeeping with background sync",
		Long: `Record income and expenses locally, organised in books, and keep them
in sync with a ledgersync server across devices.

Everything works offline; run 'ledgersync sync' or keep 'ledgersync run'
in the background to exchange changes with the server.`,
		Version:       fmt.Sprintf("%s (built %s, commit %s)", c.build.Version, c.build.BuildDate, c.build.GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}
	root.SetOut(c.io)
	root.SetErr(c.io)

	if err := config.BindFlags(c.v, root.PersistentFlags()); err != nil {
		// флаги фиксированы, ошибка означает опечатку в коде
		panic(err)
	}

	root.AddGroup(
		&cobra.Group{ID: "account", Title: "Account:"},
		&cobra.Group{ID: "ledger", Title: "Ledger:"},
		&cobra.Group{ID: "sync", Title: "Sync:"},
	)

	root.AddCommand(
		c.registerCommand(),
		c.loginCommand(),
		c.logoutCommand(),
		c.statusCommand(),
		c.bookCommand(),
		c.billCommand(),
		c.imageCommand(),
		c.syncCommand(),
		c.runCommand(),
	)
	return root
}

// Execute runs the command line with the given arguments.
func (c *Cli) Execute(ctx context.Context, args []string) error {
	defer c.Close()

	cmd := c.Command()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// Close releases the database and the log file.
func (c *Cli) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && c.logger != nil {
			c.logger.Error("Failed to close resource", "error", err)
		}
	}
	c.closers = nil
}

func (c *Cli) setup(cmd *cobra.Command) error {
	ctx := cmd.Context()

	if c.cfg == nil {
		configFile, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(c.v, configFile)
		if err != nil {
			return err
		}
		c.cfg = cfg
	}

	if c.logger == nil {
		logger, closer := logging.New(c.cfg.Log)
		c.logger = logger
		c.closers = append(c.closers, closer)
	}

	if c.store == nil {
		if dir := filepath.Dir(c.cfg.DB); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		store, err := boltdb.New(ctx, c.cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		c.store = store
		c.closers = append(c.closers, store)
	}

	if c.api == nil {
		c.api = api.NewClient(c.cfg.Server)
	}
	if deviceID, err := c.store.DeviceID(ctx); err == nil {
		c.api.SetDeviceID(deviceID)
	}
	if session, err := c.store.GetSession(ctx); err == nil {
		c.api.SetToken(session.Token)
	}

	c.auth = auth.NewService(c.api, c.store, c.logger)
	c.ledger = ledger.NewService(c.store, c.cfg.ImagesDir())
	return nil
}

// session returns the stored session. An expired token is fine for local work.
func (c *Cli) session(ctx context.Context) (*storage.Session, error) {
	session, err := c.auth.Current(ctx)
	if errors.Is(err, auth.ErrNotSignedIn) {
		return nil, fmt.Errorf("not signed in. Please run 'ledgersync login' first")
	}
	if err != nil && !errors.Is(err, auth.ErrSessionExpired) {
		return nil, err
	}
	return session, nil
}

// onlineSession returns a session whose token is still valid.
func (c *Cli) onlineSession(ctx context.Context) (*storage.Session, error) {
	session, err := c.auth.Current(ctx)
	switch {
	case errors.Is(err, auth.ErrNotSignedIn):
		return nil, fmt.Errorf("not signed in. Please run 'ledgersync login' first")
	case errors.Is(err, auth.ErrSessionExpired):
		return nil, fmt.Errorf("access token has expired. Please run 'ledgersync login' again")
	case err != nil:
		return nil, err
	}
	return session, nil
}

// bookID resolves the --book flag or the active book of the session.
func (c *Cli) bookID(cmd *cobra.Command, session *storage.Session) (string, error) {
	if id, _ := cmd.Flags().GetString("book"); id != "" {
		return id, nil
	}
	if session.ActiveBookID == "" {
		return "", fmt.Errorf("no active book. Use 'ledgersync book use <id>' or --book")
	}
	return session.ActiveBookID, nil
}
