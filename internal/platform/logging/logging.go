// Package logging builds the structured process logger and carries it
// through request contexts.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Formats accepted by Options.Format.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatLogfmt = "logfmt"
)

// Options configures New.
type Options struct {
	// Level is a level name such as "debug" or "info". Empty means info.
	Level string
	// Format is one of FormatText, FormatJSON or FormatLogfmt. Empty means text.
	Format string
	// Prefix is printed before every message, usually the service name.
	Prefix string
}

// New returns a logger writing to w. A nil writer logs to stderr.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	level := log.InfoLevel
	if raw := strings.TrimSpace(opts.Level); raw != "" {
		parsed, err := log.ParseLevel(strings.ToLower(raw))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}
	formatter, err := parseFormat(opts.Format)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          opts.Prefix,
		Formatter:       formatter,
	}), nil
}

func parseFormat(raw string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", FormatText:
		return log.TextFormatter, nil
	case FormatJSON:
		return log.JSONFormatter, nil
	case FormatLogfmt:
		return log.LogfmtFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("unknown log format %q", raw)
	}
}

type ctxKey struct{}

// WithLogger returns a context carrying l.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if l == nil {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger carried by ctx, or the default logger.
func FromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok && l != nil {
			return l
		}
	}
	return log.Default()
}
