package assets

import (
	"net/http"

	"github.com/louisbranch/mindmap.space/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.MotionStylesheet, h.handleMotion)
	mux.Handle(http.MethodGet+" "+routepath.StaticPrefix+"{$}", http.NotFoundHandler())
	mux.Handle(http.MethodGet+" "+routepath.StaticPrefix, h.files)
}
