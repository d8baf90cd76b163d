package health

import (
	"net/http"
	"sort"

	module "github.com/louisbranch/mindmap.space/internal/services/web/module"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/httpx"
)

// Report is the health payload. The site stays live while optional
// dependencies are degraded, so Status is always "ok".
type Report struct {
	Status   string          `json:"status"`
	Modules  map[string]bool `json:"modules,omitempty"`
	Degraded []string        `json:"degraded,omitempty"`
}

type handlers struct {
	reporters []module.Module
}

func newHandlers(reporters []module.Module) handlers {
	return handlers{reporters: reporters}
}

func (h handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	_ = httpx.WriteJSON(w, http.StatusOK, h.report())
}

func (h handlers) report() Report {
	report := Report{Status: "ok"}
	for _, m := range h.reporters {
		if m == nil {
			continue
		}
		reporter, ok := m.(module.HealthReporter)
		if !ok {
			continue
		}
		if report.Modules == nil {
			report.Modules = map[string]bool{}
		}
		healthy := reporter.Healthy()
		report.Modules[m.ID()] = healthy
		if !healthy {
			report.Degraded = append(report.Degraded, m.ID())
		}
	}
	sort.Strings(report.Degraded)
	return report
}
