package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/mindmap.space/internal/services/web/platform/flash"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/member"
)

type fakeProvider struct {
	enabled bool
	record  member.Member
	err     error
}

func (f fakeProvider) Enabled() bool { return f.enabled }

func (f fakeProvider) Complete(http.ResponseWriter, *http.Request) (member.Member, error) {
	return f.record, f.err
}

func serve(t *testing.T, m Module, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != "/auth/" {
		t.Fatalf("Prefix = %q, want /auth/", mount.Prefix)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func withCapability(req *http.Request, c member.Capability) *http.Request {
	return req.WithContext(member.WithCapability(req.Context(), c))
}

func TestModuleIDReturnsAuth(t *testing.T) {
	t.Parallel()

	if got := New(Config{}).ID(); got != "auth" {
		t.Fatalf("ID() = %q, want %q", got, "auth")
	}
	if New(Config{}).Healthy() {
		t.Fatalf("Healthy() = true without a provider")
	}
}

func TestPageDefaultsToSignIn(t *testing.T) {
	t.Parallel()

	rr := serve(t, New(Config{Provider: fakeProvider{enabled: true}}), httptest.NewRequest(http.MethodGet, "/auth", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{`data-mode="signin"`, `href="/auth/login"`, "Welcome Back", "<title>Sign In | Neural Mindmap</title>"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
}

func TestPageRegisterMode(t *testing.T) {
	t.Parallel()

	rr := serve(t, New(Config{Provider: fakeProvider{enabled: true}}), httptest.NewRequest(http.MethodGet, "/auth/?mode=register", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if body := rr.Body.String(); !strings.Contains(body, `data-mode="register"`) || !strings.Contains(body, "Create Account") {
		t.Fatalf("register panel missing")
	}
}

func TestPageDisablesActionWithoutProvider(t *testing.T) {
	t.Parallel()

	rr := serve(t, New(Config{}), httptest.NewRequest(http.MethodGet, "/auth", nil))
	body := rr.Body.String()
	if strings.Contains(body, `href="/auth/login"`) || !strings.Contains(body, "disabled") {
		t.Fatalf("sign in action should be disabled")
	}
}

func TestPageRedirectsMembersToProfile(t *testing.T) {
	t.Parallel()

	req := withCapability(httptest.NewRequest(http.MethodGet, "/auth", nil), member.Static{Authenticated: true, Record: member.Member{ID: "m1"}})
	rr := serve(t, New(Config{}), req)
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/profile" {
		t.Fatalf("Location = %q, want /profile", got)
	}
}

func TestLoginDelegatesToCapability(t *testing.T) {
	t.Parallel()

	called := false
	req := withCapability(httptest.NewRequest(http.MethodGet, "/auth/login", nil), member.Static{
		OnLogin: func(w http.ResponseWriter, r *http.Request) {
			called = true
			http.Redirect(w, r, "https://members.example.test/login", http.StatusFound)
		},
	})
	rr := serve(t, New(Config{}), req)
	if !called || rr.Code != http.StatusFound {
		t.Fatalf("login not delegated: called=%v status=%d", called, rr.Code)
	}
}

func TestCallbackRedirectsToProfile(t *testing.T) {
	t.Parallel()

	m := New(Config{Provider: fakeProvider{enabled: true, record: member.Member{ID: "m1"}}})
	rr := serve(t, m, httptest.NewRequest(http.MethodGet, "/auth/callback?token=x", nil))
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/profile" {
		t.Fatalf("Location = %q, want /profile", got)
	}
}

func TestCallbackFailureFlashesNotice(t *testing.T) {
	t.Parallel()

	m := New(Config{Provider: fakeProvider{enabled: true, err: errors.New("bad token")}})
	rr := serve(t, m, httptest.NewRequest(http.MethodGet, "/auth/callback?token=x", nil))
	if got := rr.Header().Get("Location"); got != "/auth" {
		t.Fatalf("Location = %q, want /auth", got)
	}
	found := false
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == flash.CookieName && cookie.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatalf("flash cookie missing")
	}
}

func TestLogoutRequiresPost(t *testing.T) {
	t.Parallel()

	rr := serve(t, New(Config{}), httptest.NewRequest(http.MethodGet, "/auth/logout", nil))
	if rr.Code == http.StatusSeeOther {
		t.Fatalf("GET logout should not sign out")
	}

	loggedOut := false
	req := withCapability(httptest.NewRequest(http.MethodPost, "/auth/logout", nil), member.Static{
		Authenticated: true,
		OnLogout: func(w http.ResponseWriter, r *http.Request) {
			loggedOut = true
			http.Redirect(w, r, "/", http.StatusSeeOther)
		},
	})
	rr = serve(t, New(Config{}), req)
	if !loggedOut || rr.Code != http.StatusSeeOther {
		t.Fatalf("logout not delegated: called=%v status=%d", loggedOut, rr.Code)
	}
}

func TestUnknownAuthPathIsNotFound(t *testing.T) {
	t.Parallel()

	rr := serve(t, New(Config{}), httptest.NewRequest(http.MethodGet, "/auth/unknown", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
