package profile

import (
	"net/http"

	"github.com/louisbranch/mindmap.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/member"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/pagerender"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/publichandler"
	"github.com/louisbranch/mindmap.space/internal/services/web/routepath"
	"github.com/louisbranch/mindmap.space/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
}

func newHandlers(base publichandler.Base) handlers {
	return handlers{Base: base}
}

func (h handlers) handleProfile(w http.ResponseWriter, r *http.Request) {
	capability := member.FromContext(httpx.RequestContext(r))
	if !capability.IsAuthenticated() {
		httpx.WriteRedirect(w, r, routepath.Auth)
		return
	}
	page := h.PageContext(w, r)
	h.WritePage(w, r, page, pagerender.Page{
		Title:     templates.T(page.Loc, "web.profile.page_title"),
		MainClass: "mm-main--profile",
		Body:      templates.ProfilePage(page, buildView(page.Loc, capability.Member())),
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}
