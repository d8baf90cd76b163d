// Package web parses configuration for and runs the web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	platformcmd "github.com/louisbranch/mindmap.space/internal/platform/cmd"
	"github.com/louisbranch/mindmap.space/internal/platform/logging"
	"github.com/louisbranch/mindmap.space/internal/services/web"
)

// Config holds the web command configuration. Environment variables seed
// every field; flags override the most common ones.
type Config struct {
	HTTPAddr      string `env:"MINDMAP_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	PublicBaseURL string `env:"MINDMAP_WEB_PUBLIC_BASE_URL"`

	CMSBaseURL string        `env:"MINDMAP_CMS_BASE_URL"`
	CMSAPIKey  string        `env:"MINDMAP_CMS_API_KEY"`
	CMSTimeout time.Duration `env:"MINDMAP_CMS_TIMEOUT" envDefault:"5s"`

	CachePath string        `env:"MINDMAP_WEB_CACHE_PATH"`
	CacheTTL  time.Duration `env:"MINDMAP_WEB_CACHE_TTL" envDefault:"5m"`

	ContentDir string `env:"MINDMAP_WEB_CONTENT_DIR"`

	MemberLoginURL    string `env:"MINDMAP_MEMBER_LOGIN_URL"`
	MemberTokenSecret string `env:"MINDMAP_MEMBER_TOKEN_SECRET"`
	MemberTokenIssuer string `env:"MINDMAP_MEMBER_TOKEN_ISSUER"`

	TrustForwardedProto bool `env:"MINDMAP_WEB_TRUST_FORWARDED_PROTO"`

	LogLevel  string `env:"MINDMAP_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"MINDMAP_LOG_FORMAT" envDefault:"text"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.PublicBaseURL, "public-base-url", cfg.PublicBaseURL, "Externally visible site origin")
	fs.StringVar(&cfg.CMSBaseURL, "cms-base-url", cfg.CMSBaseURL, "Content service base URL")
	fs.DurationVar(&cfg.CMSTimeout, "cms-timeout", cfg.CMSTimeout, "Content service request timeout")
	fs.StringVar(&cfg.CachePath, "cache-path", cfg.CachePath, "SQLite snapshot cache path (empty disables caching)")
	fs.DurationVar(&cfg.CacheTTL, "cache-ttl", cfg.CacheTTL, "How long a cached collection is served (0 never expires)")
	fs.StringVar(&cfg.ContentDir, "content-dir", cfg.ContentDir, "Directory overriding the embedded marketing copy")
	fs.StringVar(&cfg.MemberLoginURL, "member-login-url", cfg.MemberLoginURL, "Member identity provider login URL")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto for the request scheme")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(os.Stderr, logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Prefix: platformcmd.ServiceWeb,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	ctx = logging.WithLogger(ctx, logger)

	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, serverConfig(cfg))
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func serverConfig(cfg Config) web.Config {
	return web.Config{
		HTTPAddr:            cfg.HTTPAddr,
		PublicBaseURL:       cfg.PublicBaseURL,
		CMSBaseURL:          cfg.CMSBaseURL,
		CMSAPIKey:           cfg.CMSAPIKey,
		CMSTimeout:          cfg.CMSTimeout,
		CachePath:           cfg.CachePath,
		CacheTTL:            cfg.CacheTTL,
		ContentDir:          cfg.ContentDir,
		MemberLoginURL:      cfg.MemberLoginURL,
		MemberTokenSecret:   cfg.MemberTokenSecret,
		MemberTokenIssuer:   cfg.MemberTokenIssuer,
		TrustForwardedProto: cfg.TrustForwardedProto,
	}
}
