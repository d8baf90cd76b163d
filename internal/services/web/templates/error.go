package templates

import (
	"net/http"

	"github.com/a-h/templ"
)

const (
	errorPageTitleNotFoundKey  = "web.error.page_title_not_found"
	errorPageTitleServerErrKey = "web.error.page_title_server_error"
	errorHeadingNotFoundKey    = "web.error.title_not_found"
	errorHeadingServerErrKey   = "web.error.title_server_error"
	errorMessageNotFoundKey    = "web.error.message_not_found"
	errorMessageServerErrKey   = "web.error.message_server_error"
	errorBackHomeTextKey       = "web.error.action_back_home"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, errorPageTitleNotFoundKey)
	}
	return T(loc, errorPageTitleServerErrKey)
}

type errorView struct {
	Status   string
	Heading  string
	Message  string
	BackHome string
}

// ErrorPage renders the body of the shell error page.
func ErrorPage(statusCode int, loc Localizer) templ.Component {
	statusCode = normalizeErrorStatus(statusCode)
	view := errorView{
		Status:   http.StatusText(statusCode),
		Heading:  T(loc, errorHeadingServerErrKey),
		Message:  T(loc, errorMessageServerErrKey),
		BackHome: T(loc, errorBackHomeTextKey),
	}
	if statusCode == http.StatusNotFound {
		view.Heading, view.Message = T(loc, errorHeadingNotFoundKey), T(loc, errorMessageNotFoundKey)
	}
	return errorBody(view)
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
