// Package assets serves the embedded static files and the generated motion
// stylesheet.
package assets

import (
	"io/fs"
	"net/http"

	"github.com/louisbranch/mindmap.space/internal/mindmap/motion"
	module "github.com/louisbranch/mindmap.space/internal/services/web/module"
	"github.com/louisbranch/mindmap.space/internal/services/web/routepath"
	"github.com/louisbranch/mindmap.space/internal/services/web/static"
)

// Module provides the static asset routes.
type Module struct {
	files fs.FS
}

// New returns an assets module over the embedded static files.
func New() Module {
	return Module{files: static.FS}
}

// NewWithFS returns an assets module over files.
func NewWithFS(files fs.FS) Module {
	return Module{files: files}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "assets" }

// Mount wires the asset routes. The motion stylesheet is rendered once.
func (m Module) Mount() (module.Mount, error) {
	files := m.files
	if files == nil {
		files = static.FS
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(files, motion.Stylesheet()))
	return module.Mount{Prefix: routepath.StaticPrefix, Handler: mux}, nil
}
