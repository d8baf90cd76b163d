// Package publichandler provides a shared base for web module handlers.
// It centralizes error handling, localization, and page rendering that would
// otherwise be duplicated across modules.
package publichandler

import (
	"net/http"
	"time"

	module "github.com/louisbranch/mindmap.space/internal/services/web/module"
	apperrors "github.com/louisbranch/mindmap.space/internal/services/web/platform/errors"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/pagerender"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/mindmap.space/internal/services/web/templates"
)

// Base provides shared error handling and page rendering. Embed this in
// handler structs to get PageContext, WritePage, WriteNotFound and WriteError.
type Base struct {
	opts pagerender.Options
}

// Option configures a Base.
type Option func(*Base)

// WithResolveViewer replaces the member-backed viewer resolver.
func WithResolveViewer(rv module.ResolveViewer) Option {
	return func(b *Base) { b.opts.ResolveViewer = rv }
}

// WithSchemePolicy sets how request schemes are resolved for cookies.
func WithSchemePolicy(policy requestmeta.SchemePolicy) Option {
	return func(b *Base) { b.opts.Policy = policy }
}

// WithClock sets the clock used to date pages.
func WithClock(now func() time.Time) Option {
	return func(b *Base) { b.opts.Now = now }
}

// NewBase builds a handler base with the given options.
func NewBase(opts ...Option) Base {
	var b Base
	for _, o := range opts {
		if o != nil {
			o(&b)
		}
	}
	return b
}

// Options returns the rendering options of the base.
func (b Base) Options() pagerender.Options {
	return b.opts
}

// ResolveRequestViewer resolves viewer state for the request.
func (b Base) ResolveRequestViewer(r *http.Request) module.Viewer {
	if b.opts.ResolveViewer == nil {
		return pagerender.MemberViewer(r)
	}
	return b.opts.ResolveViewer(r)
}

// IsViewerSignedIn reports whether the current request is authenticated.
func (b Base) IsViewerSignedIn(r *http.Request) bool {
	return b.ResolveRequestViewer(r).SignedIn
}

// PageContext resolves the layout context of the request.
func (b Base) PageContext(w http.ResponseWriter, r *http.Request) webtemplates.PageContext {
	return pagerender.ResolvePageContext(w, r, b.opts)
}

// WritePage renders page, falling back to the server error page when
// rendering fails.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, pageContext webtemplates.PageContext, page pagerender.Page) {
	if err := pagerender.WritePage(w, r, pageContext, b.opts, page); err != nil {
		b.WriteError(w, r, apperrors.Wrap(apperrors.KindUnknown, "render page", err))
	}
}

// WriteNotFound renders the localized 404 page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.opts)
}

// WriteError renders a user-safe error response: error pages for not-found
// and server errors, plain-text status messages for everything else.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b.opts)
}
