// Package sessioncookie centralizes the member session cookie.
//
// The cookie holds the signed member token issued by the identity provider;
// it is HttpOnly so page scripts never see it.
package sessioncookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/mindmap.space/internal/services/web/platform/requestmeta"
)

// Name is the canonical member session cookie name.
const Name = "mm_session"

// Read returns the trimmed session cookie value when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write stores token until expiresAt. A zero expiresAt writes a browser
// session cookie.
func Write(w http.ResponseWriter, r *http.Request, token string, expiresAt time.Time, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	cookie := base(r, policy)
	cookie.Value = strings.TrimSpace(token)
	if !expiresAt.IsZero() {
		cookie.Expires = expiresAt.UTC()
		if maxAge := int(time.Until(expiresAt).Seconds()); maxAge > 0 {
			cookie.MaxAge = maxAge
		}
	}
	http.SetCookie(w, cookie)
}

// Clear expires the session cookie.
func Clear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	cookie := base(r, policy)
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
}

func base(r *http.Request, policy requestmeta.SchemePolicy) *http.Cookie {
	return &http.Cookie{
		Name:     Name,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
	}
}
