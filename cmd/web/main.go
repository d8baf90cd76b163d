// Package main starts the browser-facing web service.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/louisbranch/mindmap.space/internal/cmd/web"
	"github.com/louisbranch/mindmap.space/internal/platform/config"
)

func main() {
	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := webcmd.Run(ctx, cfg); err != nil {
		stop()
		config.Exitf("failed to serve: %v", err)
	}
}
