// Package module defines what a web feature hands to the root composer.
package module

import "net/http"

// Viewer contains the header chrome data for the current visitor.
type Viewer struct {
	SignedIn bool
	// DisplayName is empty when the member has no nickname or name.
	DisplayName string
	Initial     string
	PhotoURL    string
}

// ResolveViewer resolves header chrome state for a request.
type ResolveViewer func(*http.Request) Viewer

// Mount binds a handler to a path prefix ending in "/". The composer also
// routes the prefix without its trailing slash to the same handler.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is one routable area of the site.
type Module interface {
	// ID names the module in health reports and composition errors.
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is implemented by modules whose backing source may be
// unconfigured. The health module lists those reporting false as degraded.
type HealthReporter interface {
	Healthy() bool
}
