package app

import (
	"github.com/charmbracelet/log"
	module "github.com/louisbranch/mindmap.space/internal/services/web/module"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/requestmeta"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	PublicModules       []module.Module
	ProtectedModules    []module.Module
	RequestSchemePolicy requestmeta.SchemePolicy
	// Logger is carried in every request context. Nil uses the default
	// logger.
	Logger *log.Logger
	// Session attaches the member capability to each request. Nil treats
	// every visitor as anonymous.
	Session httpx.Middleware
}
