// Package auth serves the sign-in page and the member provider handshake.
package auth

import (
	"net/http"

	"github.com/louisbranch/mindmap.space/internal/services/web/content"
	module "github.com/louisbranch/mindmap.space/internal/services/web/module"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/member"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/publichandler"
	"github.com/louisbranch/mindmap.space/internal/services/web/routepath"
)

// IdentityProvider completes member sign in.
type IdentityProvider interface {
	Enabled() bool
	Complete(w http.ResponseWriter, r *http.Request) (member.Member, error)
}

// Config wires the auth module.
type Config struct {
	// Provider is the member identity provider. Nil disables sign in.
	Provider IdentityProvider
	Content  *content.Library
	Base     publichandler.Base
}

// Module provides the auth routes.
type Module struct {
	provider IdentityProvider
	content  *content.Library
	base     publichandler.Base
}

// New returns an auth module.
func New(cfg Config) Module {
	provider := cfg.Provider
	if provider == nil {
		provider = unavailableProvider{}
	}
	library := cfg.Content
	if library == nil {
		library = content.Default()
	}
	return Module{provider: provider, content: library, base: cfg.Base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "auth" }

// Healthy reports whether visitors can sign in.
func (m Module) Healthy() bool {
	return m.provider.Enabled()
}

// Mount wires the auth routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.provider, m.content, m.base))
	return module.Mount{Prefix: routepath.AuthPrefix, Handler: mux}, nil
}

type unavailableProvider struct{}

func (unavailableProvider) Enabled() bool { return false }

func (unavailableProvider) Complete(http.ResponseWriter, *http.Request) (member.Member, error) {
	return member.Member{}, member.ErrProviderUnavailable
}
