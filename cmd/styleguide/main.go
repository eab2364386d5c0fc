// Package main renders the portal styleguide.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/heritage.archive/internal/platform/cmd"
	"github.com/louisbranch/heritage.archive/internal/platform/config"
	"github.com/louisbranch/heritage.archive/internal/tools/styleguide"
)

func main() {
	if err := cmd.LoadDotEnv(); err != nil {
		config.Exitf("Error: %v", err)
	}
	cfg, err := styleguide.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	if err := cmd.RunWithTelemetry(ctx, cmd.ServiceStyleguide, func(ctx context.Context) error {
		return styleguide.Run(ctx, cfg, os.Stdout, os.Stderr)
	}); err != nil {
		config.Exitf("Error: %v", err)
	}
}
