package auth

import (
	"net/http"

	platformi18n "github.com/louisbranch/mindmap.space/internal/platform/i18n"
	"github.com/louisbranch/mindmap.space/internal/platform/logging"
	"github.com/louisbranch/mindmap.space/internal/services/web/content"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/flash"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/member"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/pagerender"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/publichandler"
	"github.com/louisbranch/mindmap.space/internal/services/web/routepath"
	"github.com/louisbranch/mindmap.space/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
	provider IdentityProvider
	content  *content.Library
}

func newHandlers(provider IdentityProvider, library *content.Library, base publichandler.Base) handlers {
	return handlers{Base: base, provider: provider, content: library}
}

// handlePage renders the sign-in/register toggle. Members are sent to their
// profile.
func (h handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	if h.IsViewerSignedIn(r) {
		httpx.WriteRedirect(w, r, routepath.Profile)
		return
	}
	page := h.PageContext(w, r)
	tag, _ := platformi18n.ParseTag(page.Lang)
	view := templates.AuthView{
		Register:      r.URL.Query().Get(routepath.AuthModeParam) == routepath.AuthModeRegister,
		Features:      h.content.For(tag).Auth.Features,
		ProviderReady: h.provider.Enabled(),
	}
	h.WritePage(w, r, page, pagerender.Page{
		Title:     templates.T(page.Loc, "web.auth.page_title"),
		MainClass: "mm-main--auth",
		Body:      templates.AuthPage(page, view),
	})
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	member.FromContext(httpx.RequestContext(r)).Login(w, r)
}

func (h handlers) handleCallback(w http.ResponseWriter, r *http.Request) {
	record, err := h.provider.Complete(w, r)
	if err != nil {
		logging.FromContext(httpx.RequestContext(r)).Warn("member sign in failed", "err", err)
		flash.Write(w, r, flash.Error(member.NoticeSignInFailed), h.Options().Policy)
		httpx.WriteRedirect(w, r, routepath.Auth)
		return
	}
	logging.FromContext(httpx.RequestContext(r)).Info("member signed in", "member_id", record.ID)
	httpx.WriteRedirect(w, r, routepath.Profile)
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	member.FromContext(httpx.RequestContext(r)).Logout(w, r)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}
