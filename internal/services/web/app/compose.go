package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/mindmap.space/internal/services/web/module"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/mindmap.space/internal/services/web/routepath"
)

const defaultLoginPath = routepath.Auth

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	AuthRequired        func(*http.Request) bool
	PublicModules       []module.Module
	ProtectedModules    []module.Module
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Compose builds a root HTTP handler from module groups. Mutations carrying
// a session cookie must prove same-origin in every group.
func Compose(input ComposeInput) (http.Handler, error) {
	if input.AuthRequired == nil {
		input.AuthRequired = func(*http.Request) bool { return false }
	}
	r := router{mux: http.NewServeMux(), owners: map[string]string{}}

	for _, feature := range input.PublicModules {
		if err := r.mount("public", feature, nil); err != nil {
			return nil, err
		}
	}
	protect := requireAuth(input.AuthRequired)
	for _, feature := range input.ProtectedModules {
		if err := r.mount("protected", feature, protect); err != nil {
			return nil, err
		}
	}
	return requireCookieSessionSameOrigin(input.RequestSchemePolicy)(r.mux), nil
}

// router records which module owns each mounted pattern.
type router struct {
	mux    *http.ServeMux
	owners map[string]string
}

// mount registers feature under its prefix and, below the root, under the
// prefix without its trailing slash.
func (r router) mount(group string, feature module.Module, wrap func(http.Handler) http.Handler) error {
	if feature == nil {
		return fmt.Errorf("%s module is nil", group)
	}
	mount, err := feature.Mount()
	if err != nil {
		return fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if err := validatePrefix(mount.Prefix); err != nil {
		return fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	handler := mount.Handler
	if wrap != nil {
		handler = wrap(handler)
	}

	patterns := []string{mount.Prefix}
	if mount.Prefix != routepath.Root {
		patterns = append(patterns, strings.TrimSuffix(mount.Prefix, "/"))
	}
	for _, pattern := range patterns {
		if owner, taken := r.owners[pattern]; taken {
			return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), pattern, owner)
		}
	}
	for _, pattern := range patterns {
		r.owners[pattern] = feature.ID()
		r.mux.Handle(pattern, handler)
	}
	return nil
}

func validatePrefix(prefix string) error {
	switch {
	case prefix == "":
		return fmt.Errorf("prefix is required")
	case strings.TrimSpace(prefix) != prefix:
		return fmt.Errorf("prefix must not include surrounding whitespace")
	case !strings.HasPrefix(prefix, "/"):
		return fmt.Errorf("prefix must begin with /")
	case !strings.HasSuffix(prefix, "/"):
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}

func requireAuth(authenticated func(*http.Request) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			return http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authenticated(r) {
				httpx.WriteRedirect(w, r, defaultLoginPath)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requireCookieSessionSameOrigin(policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutationMethod(r) || !hasSessionCookie(r) {
				next.ServeHTTP(w, r)
				return
			}
			if !requestmeta.HasSameOriginProof(r, policy) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	return r != nil && r.Method != http.MethodGet && r.Method != http.MethodHead && r.Method != http.MethodOptions
}

func hasSessionCookie(r *http.Request) bool {
	_, ok := sessioncookie.Read(r)
	return ok
}
