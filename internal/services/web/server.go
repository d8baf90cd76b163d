package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/louisbranch/mindmap.space/internal/platform/logging"
	"github.com/louisbranch/mindmap.space/internal/platform/timeouts"
	"github.com/louisbranch/mindmap.space/internal/services/web/app"
	"github.com/louisbranch/mindmap.space/internal/services/web/content"
	"github.com/louisbranch/mindmap.space/internal/services/web/integration/cache"
	"github.com/louisbranch/mindmap.space/internal/services/web/integration/cms"
	"github.com/louisbranch/mindmap.space/internal/services/web/modules"
	"github.com/louisbranch/mindmap.space/internal/services/web/modules/home"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/member"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/publichandler"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/mindmap.space/internal/services/web/storage"
	websqlite "github.com/louisbranch/mindmap.space/internal/services/web/storage/sqlite"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// PublicBaseURL is the externally visible origin, used for provider
	// callbacks. Empty derives it from each request.
	PublicBaseURL string

	// CMSBaseURL locates the content service. Empty renders an empty hero.
	CMSBaseURL string
	CMSAPIKey  string
	CMSTimeout time.Duration

	// CachePath is the SQLite snapshot store. Empty disables caching.
	CachePath string
	CacheTTL  time.Duration

	// ContentDir overrides the embedded marketing copy with a directory
	// holding locales/*.yaml.
	ContentDir string

	MemberLoginURL    string
	MemberTokenSecret string
	MemberTokenIssuer string

	// TrustForwardedProto reads X-Forwarded-Proto when resolving the request
	// scheme. Enable only behind a proxy that sets it.
	TrustForwardedProto bool

	Logger *log.Logger
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	cache      *websqlite.Store
	logger     *log.Logger
}

// NewServer builds a configured web server.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}

	library, err := loadContent(cfg.ContentDir)
	if err != nil {
		return nil, err
	}
	provider, err := member.NewProvider(member.Config{
		LoginURL:      cfg.MemberLoginURL,
		PublicBaseURL: cfg.PublicBaseURL,
		Secret:        []byte(strings.TrimSpace(cfg.MemberTokenSecret)),
		Issuer:        cfg.MemberTokenIssuer,
		Policy:        policy,
	})
	if err != nil {
		return nil, fmt.Errorf("member provider: %w", err)
	}
	if !provider.Enabled() {
		logger.Warn("member sign in disabled", "reason", "login url or token secret not configured")
	}

	elements, store, err := openElementGateway(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	deps := modules.Dependencies{
		Elements: elements,
		Provider: provider,
		Content:  library,
		Base:     publichandler.NewBase(publichandler.WithSchemePolicy(policy)),
	}
	handler, err := app.BuildRootHandler(app.Config{
		PublicModules:       modules.DefaultPublicModules(deps),
		ProtectedModules:    modules.DefaultProtectedModules(deps),
		RequestSchemePolicy: policy,
		Logger:              logger,
		Session:             provider.Middleware(),
	})
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return nil, fmt.Errorf("compose web handler: %w", err)
	}

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		cache:  store,
		logger: logger,
	}, nil
}

func loadContent(dir string) (*content.Library, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return content.Default(), nil
	}
	library, err := content.LoadFromFS(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("load content from %s: %w", dir, err)
	}
	return library, nil
}

// openElementGateway returns the hero element source and the cache store it
// owns, if any.
func openElementGateway(ctx context.Context, cfg Config, logger *log.Logger) (home.ElementGateway, *websqlite.Store, error) {
	if strings.TrimSpace(cfg.CMSBaseURL) == "" {
		logger.Warn("content service not configured, hero renders empty")
		return home.NewCMSGateway(home.CMSConfig{}), nil, nil
	}
	client, err := cms.NewClient(cms.Config{
		BaseURL: cfg.CMSBaseURL,
		APIKey:  cfg.CMSAPIKey,
		Timeout: cfg.CMSTimeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("content service client: %w", err)
	}
	store, err := cache.OpenStore(ctx, cfg.CachePath)
	if err != nil {
		return nil, nil, err
	}
	var snapshots storage.Store
	if store != nil {
		snapshots = store
	}
	return home.NewCMSGateway(home.CMSConfig{
		Client:   client,
		Cache:    snapshots,
		CacheTTL: cfg.CacheTTL,
	}), store, nil
}

// ListenAndServe serves HTTP until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Info("web listening", "addr", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the snapshot cache.
func (s *Server) Close() {
	if s == nil || s.cache == nil {
		return
	}
	if err := s.cache.Close(); err != nil {
		s.logger.Warn("close web cache", "err", err)
	}
}
