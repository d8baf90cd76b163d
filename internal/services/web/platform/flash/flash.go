// Package flash carries one-time notices across a redirect in a cookie.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/louisbranch/mindmap.space/internal/services/web/platform/requestmeta"
)

// CookieName is the cookie holding a pending notice.
const CookieName = "mm_flash"

// Kind selects how a notice is presented.
type Kind string

const (
	KindInfo  Kind = "info"
	KindError Kind = "error"
)

// Notice references a catalog message to show on the next page.
type Notice struct {
	Kind Kind   `json:"kind"`
	Key  string `json:"key"`
}

// Info builds an informational notice for key.
func Info(key string) Notice {
	return Notice{Kind: KindInfo, Key: key}
}

// Error builds an error notice for key.
func Error(key string) Notice {
	return Notice{Kind: KindError, Key: key}
}

// Write stores notice for the next page render. Invalid notices are dropped.
func Write(w http.ResponseWriter, r *http.Request, notice Notice, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	notice, ok := normalize(notice)
	if !ok {
		return
	}
	payload, err := json.Marshal(notice)
	if err != nil {
		return
	}
	cookie := newCookie(r, policy)
	cookie.Value = base64.RawURLEncoding.EncodeToString(payload)
	http.SetCookie(w, cookie)
}

// ReadAndClear returns the pending notice and expires its cookie. Malformed
// cookies are cleared and ignored.
func ReadAndClear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}
	if w != nil {
		expired := newCookie(r, policy)
		expired.MaxAge = -1
		http.SetCookie(w, expired)
	}
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(cookie.Value))
	if err != nil {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(decoded, &notice); err != nil {
		return Notice{}, false
	}
	return normalize(notice)
}

func newCookie(r *http.Request, policy requestmeta.SchemePolicy) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
	}
}

func normalize(notice Notice) (Notice, bool) {
	notice.Key = strings.TrimSpace(notice.Key)
	notice.Kind = Kind(strings.ToLower(strings.TrimSpace(string(notice.Kind))))
	if notice.Key == "" {
		return Notice{}, false
	}
	switch notice.Kind {
	case KindInfo, KindError:
		return notice, true
	default:
		return Notice{}, false
	}
}
