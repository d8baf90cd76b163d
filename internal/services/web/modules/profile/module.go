// Package profile serves the signed-in member's profile page.
package profile

import (
	"net/http"

	module "github.com/louisbranch/mindmap.space/internal/services/web/module"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/publichandler"
	"github.com/louisbranch/mindmap.space/internal/services/web/routepath"
)

// Module provides the member profile route. It belongs to the protected
// group; anonymous visitors are sent to the auth page.
type Module struct {
	base publichandler.Base
}

// New returns a profile module.
func New(base publichandler.Base) Module {
	return Module{base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "profile" }

// Mount wires the profile route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.base))
	return module.Mount{Prefix: routepath.ProfilePrefix, Handler: mux}, nil
}
