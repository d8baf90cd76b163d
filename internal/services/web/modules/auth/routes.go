package auth

import (
	"net/http"

	"github.com/louisbranch/mindmap.space/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Auth, h.handlePage)
	mux.HandleFunc(http.MethodGet+" "+routepath.AuthPrefix+"{$}", h.handlePage)
	mux.HandleFunc(http.MethodGet+" "+routepath.AuthLogin, h.handleLogin)
	mux.HandleFunc(http.MethodGet+" "+routepath.AuthCallback, h.handleCallback)
	mux.HandleFunc(http.MethodPost+" "+routepath.Logout, h.handleLogout)
	mux.HandleFunc(routepath.AuthPrefix+"{rest...}", h.handleNotFound)
}
