package modules

import (
	"github.com/louisbranch/mindmap.space/internal/services/web/modules/assets"
	"github.com/louisbranch/mindmap.space/internal/services/web/modules/auth"
	"github.com/louisbranch/mindmap.space/internal/services/web/modules/health"
	"github.com/louisbranch/mindmap.space/internal/services/web/modules/home"
	"github.com/louisbranch/mindmap.space/internal/services/web/modules/profile"
)

// DefaultPublicModules returns the modules reachable without a session. The
// health module reports on every other public module.
func DefaultPublicModules(deps Dependencies) []Module {
	public := []Module{
		assets.New(),
		auth.New(auth.Config{Provider: deps.Provider, Content: deps.Content, Base: deps.Base}),
		home.New(home.Config{Gateway: deps.Elements, Content: deps.Content, Base: deps.Base}),
	}
	return append(public, health.New(public...))
}

// DefaultProtectedModules returns the modules that require a member session.
func DefaultProtectedModules(deps Dependencies) []Module {
	return []Module{
		profile.New(deps.Base),
	}
}
