// Package weberror renders shared shell error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/louisbranch/mindmap.space/internal/platform/logging"
	apperrors "github.com/louisbranch/mindmap.space/internal/services/web/platform/errors"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/mindmap.space/internal/services/web/platform/i18n"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/mindmap.space/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized shell error page.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, opts pagerender.Options) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	page := pagerender.ResolvePageContext(w, r, opts)
	err := pagerender.WritePage(w, r, page, opts, pagerender.Page{
		Title:      webtemplates.ErrorPageTitle(statusCode, page.Loc),
		StatusCode: statusCode,
		MainClass:  "mm-main--error",
		Body:       webtemplates.ErrorPage(statusCode, page.Loc),
	})
	if err != nil {
		logging.FromContext(httpx.RequestContext(r)).Error("render error page", "status", statusCode, "err", err)
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response. Internal
// error text never reaches the visitor.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, opts pagerender.Options) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		logging.FromContext(httpx.RequestContext(r)).Error("request failed", "path", requestPath(r), "err", err)
	}
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, opts)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}
