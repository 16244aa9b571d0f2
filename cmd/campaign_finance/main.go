package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/campaign_finance/internal/cli"
	"github.com/SscSPs/campaign_finance/internal/platform/config"
	"github.com/google/subcommands"
)

// @title Campaign Finance API
// @version 1.0
// @description Ledger, fiscal year, mortgage and budget operations for campaign assets.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commander := subcommands.NewCommander(flag.CommandLine, os.Args[0])
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cli.Register(commander, cli.NewEnv(cfg, logger, os.Stdin, os.Stdout, os.Stderr))

	flag.Parse()
	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}
