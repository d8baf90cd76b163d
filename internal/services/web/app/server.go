package app

import (
	"net/http"

	"github.com/louisbranch/mindmap.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/member"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/observability"
)

// BuildRootHandler composes the module groups and wraps them in the request
// middleware stack. Protected modules admit authenticated members only.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	root, err := Compose(ComposeInput{
		AuthRequired:        memberAuthenticated,
		PublicModules:       cfg.PublicModules,
		ProtectedModules:    cfg.ProtectedModules,
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	})
	if err != nil {
		return nil, err
	}
	return httpx.Chain(root,
		httpx.RequestID(),
		httpx.WithLogger(cfg.Logger),
		httpx.RecoverPanic(),
		observability.RequestLogger(cfg.Logger),
		cfg.Session,
	), nil
}

func memberAuthenticated(r *http.Request) bool {
	return member.FromContext(r.Context()).IsAuthenticated()
}
