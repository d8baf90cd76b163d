// Package health serves the process liveness endpoint.
package health

import (
	"net/http"

	module "github.com/louisbranch/mindmap.space/internal/services/web/module"
	"github.com/louisbranch/mindmap.space/internal/services/web/routepath"
)

// Module provides the health route. Modules implementing
// module.HealthReporter contribute to the report.
type Module struct {
	reporters []module.Module
}

// New returns a health module reporting on the given modules.
func New(reported ...module.Module) Module {
	return Module{reporters: reported}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "health" }

// Mount wires the health route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.reporters))
	return module.Mount{Prefix: routepath.HealthPrefix, Handler: mux}, nil
}
