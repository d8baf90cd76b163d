package health

import (
	"net/http"

	"github.com/louisbranch/mindmap.space/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(http.MethodGet+" "+routepath.HealthPrefix+"{$}", h.handleHealth)
	mux.HandleFunc(routepath.HealthPrefix+"{rest...}", http.NotFound)
}
