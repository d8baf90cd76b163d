// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	module "github.com/louisbranch/mindmap.space/internal/services/web/module"
	flashnotice "github.com/louisbranch/mindmap.space/internal/services/web/platform/flash"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/mindmap.space/internal/services/web/platform/i18n"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/member"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/requestmeta"
	webtemplates "github.com/louisbranch/mindmap.space/internal/services/web/templates"
)

// Options carries the request-independent inputs of page rendering.
type Options struct {
	Policy requestmeta.SchemePolicy
	// ResolveViewer defaults to MemberViewer.
	ResolveViewer module.ResolveViewer
	// Now defaults to time.Now and dates the footer.
	Now func() time.Time
}

// Page describes one full-page response.
type Page struct {
	Title           string
	MetaDescription string
	MainClass       string
	StatusCode      int
	Body            templ.Component
}

// MemberViewer derives header chrome from the member capability of the
// request.
func MemberViewer(r *http.Request) module.Viewer {
	capability := member.FromContext(httpx.RequestContext(r))
	if !capability.IsAuthenticated() {
		return module.Viewer{}
	}
	record := capability.Member()
	return module.Viewer{
		SignedIn:    true,
		DisplayName: record.DisplayName(""),
		Initial:     record.Initial("?"),
		PhotoURL:    strings.TrimSpace(record.PhotoURL),
	}
}

// ResolvePageContext resolves language, viewer and path state for a page.
// An explicit ?lang choice is persisted on w.
func ResolvePageContext(w http.ResponseWriter, r *http.Request, opts Options) webtemplates.PageContext {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	resolveViewer := opts.ResolveViewer
	if resolveViewer == nil {
		resolveViewer = MemberViewer
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	page := webtemplates.PageContext{
		Lang:   lang,
		Loc:    loc,
		Viewer: resolveViewer(r),
		Year:   now().Year(),
	}
	if r != nil && r.URL != nil {
		page.CurrentPath = r.URL.Path
		page.CurrentQuery = r.URL.RawQuery
	}
	return page
}

// WritePage renders page inside the document shell. Nothing is written when
// rendering fails, so callers can still send an error response.
func WritePage(w http.ResponseWriter, r *http.Request, pageContext webtemplates.PageContext, opts Options, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = templ.NopComponent
	}

	shell := webtemplates.Shell(pageContext, webtemplates.ShellOptions{
		Title:           page.Title,
		MetaDescription: page.MetaDescription,
		MainClass:       page.MainClass,
		Toast:           resolveFlashToast(w, r, pageContext.Loc, opts.Policy),
	})
	var buf bytes.Buffer
	if err := shell.Render(templ.WithChildren(httpx.RequestContext(r), body), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer, policy requestmeta.SchemePolicy) *webtemplates.Toast {
	if r == nil {
		return nil
	}
	notice, ok := flashnotice.ReadAndClear(w, r, policy)
	if !ok {
		return nil
	}
	message := strings.TrimSpace(webtemplates.T(loc, notice.Key))
	if message == "" {
		message = strings.TrimSpace(notice.Key)
	}
	if message == "" {
		return nil
	}
	return &webtemplates.Toast{
		Kind:    string(notice.Kind),
		Message: message,
	}
}
