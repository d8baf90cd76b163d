// Package cmd holds the startup plumbing shared by command entrypoints.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/mindmap.space/internal/platform/config"
	"github.com/louisbranch/mindmap.space/internal/platform/logging"
	"github.com/louisbranch/mindmap.space/internal/platform/otel"
)

// telemetryShutdownTimeout bounds how long buffered spans may take to flush.
const telemetryShutdownTimeout = 5 * time.Second

// ServiceWeb identifies the web service in telemetry resources and logs.
const ServiceWeb = "web"

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry sets up tracing for service, calls run and flushes spans
// once run returns. A failed flush is logged and never masks the run error.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	switch {
	case service == "":
		return errors.New("service name is required")
	case run == nil:
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	logger := logging.FromContext(ctx)
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			logger.Warn("telemetry shutdown", "service", service, "err", err)
		}
	}()

	started := time.Now()
	err = run(ctx)
	logger.Info("service stopped", "service", service, "uptime", time.Since(started).Round(time.Second), "err", err)
	return err
}
