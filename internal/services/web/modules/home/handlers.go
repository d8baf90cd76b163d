package home

import (
	"net/http"

	platformi18n "github.com/louisbranch/mindmap.space/internal/platform/i18n"
	"github.com/louisbranch/mindmap.space/internal/services/web/content"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/pagerender"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/publichandler"
	"github.com/louisbranch/mindmap.space/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
	service service
	content *content.Library
}

func newHandlers(s service, library *content.Library, base publichandler.Base) handlers {
	return handlers{Base: base, service: s, content: library}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := h.PageContext(w, r)
	tag, _ := platformi18n.ParseTag(page.Lang)
	view := h.service.loadHome(httpx.RequestContext(r), h.content.For(tag))
	h.WritePage(w, r, page, pagerender.Page{
		Title:     templates.T(page.Loc, "web.home.page_title"),
		MainClass: "mm-main--home",
		Body:      templates.HomePage(page, view),
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}
