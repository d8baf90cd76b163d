// Package modules defines web module registry helpers.
package modules

import (
	"github.com/louisbranch/mindmap.space/internal/services/web/content"
	module "github.com/louisbranch/mindmap.space/internal/services/web/module"
	"github.com/louisbranch/mindmap.space/internal/services/web/modules/auth"
	"github.com/louisbranch/mindmap.space/internal/services/web/modules/home"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/publichandler"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the collaborators required to compose the web module
// registry. Each field is typed as the narrow interface defined by the
// consuming module.
type Dependencies struct {
	// Elements feeds the home hero. Nil renders an empty hero.
	Elements home.ElementGateway
	// Provider completes member sign in. Nil disables sign in.
	Provider auth.IdentityProvider
	// Content overrides the embedded marketing copy.
	Content *content.Library
	// Base carries the shared page rendering options.
	Base publichandler.Base
}
