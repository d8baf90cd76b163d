// Package home serves the landing page with the floating element hero.
package home

import (
	"net/http"

	"github.com/louisbranch/mindmap.space/internal/services/web/content"
	module "github.com/louisbranch/mindmap.space/internal/services/web/module"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/publichandler"
	"github.com/louisbranch/mindmap.space/internal/services/web/routepath"
)

// Config wires the home module.
type Config struct {
	// Gateway loads the hero elements. Nil behaves as an unconfigured CMS.
	Gateway ElementGateway
	// Content defaults to the embedded marketing copy.
	Content *content.Library
	Base    publichandler.Base
}

// Module provides the home route.
type Module struct {
	service service
	content *content.Library
	base    publichandler.Base
}

// New returns a home module.
func New(cfg Config) Module {
	library := cfg.Content
	if library == nil {
		library = content.Default()
	}
	return Module{
		service: newService(cfg.Gateway),
		content: library,
		base:    cfg.Base,
	}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Healthy reports whether the element gateway is configured.
func (m Module) Healthy() bool {
	return m.service.configured()
}

// Mount wires the landing page.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.service, m.content, m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
