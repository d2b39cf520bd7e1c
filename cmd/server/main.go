package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iudanet/ledgersync/internal/logging"
	"github.com/iudanet/ledgersync/internal/server"
	"github.com/iudanet/ledgersync/internal/server/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	v := viper.New()
	fs := pflag.NewFlagSet("ledgersync-server", pflag.ContinueOnError)
	if err := config.BindFlags(v, fs); err != nil {
		return err
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if showVersion, _ := fs.GetBool("version"); showVersion {
		printVersion()
		return nil
	}

	configFile, _ := fs.GetString("config")
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}

	logger, closer := logging.New(cfg.Log)
	defer func() { _ = closer.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("LedgerSync server starting", "version", Version, "commit", GitCommit)
	return server.Run(ctx, cfg, Version, logger)
}

func printVersion() {
	fmt.Printf("LedgerSync Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
