package profile

import (
	"net/http"

	"github.com/louisbranch/mindmap.space/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Profile, h.handleProfile)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProfilePrefix+"{$}", h.handleProfile)
	mux.HandleFunc(routepath.ProfilePrefix+"{rest...}", h.handleNotFound)
}
