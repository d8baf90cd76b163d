package member

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/louisbranch/mindmap.space/internal/platform/logging"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/flash"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/mindmap.space/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/mindmap.space/internal/services/web/routepath"
)

// ReturnToParam names the callback URL sent to the identity provider.
const ReturnToParam = "return_to"

// TokenParam names the signed token the provider appends to the callback.
const TokenParam = "token"

// Notice keys written by the provider.
const (
	NoticeSignedOut    = "web.auth.notice.signed_out"
	NoticeSignInFailed = "web.auth.notice.sign_in_failed"
)

// ErrProviderUnavailable reports that no identity provider is configured.
var ErrProviderUnavailable = errors.New("member identity provider is not configured")

// Config configures a Provider.
type Config struct {
	// LoginURL is the provider page visitors are sent to. Empty disables
	// sign in.
	LoginURL string
	// PublicBaseURL is the externally visible origin of this site. Empty
	// derives it from each request.
	PublicBaseURL string
	// Secret verifies member tokens.
	Secret []byte
	Issuer string
	Policy requestmeta.SchemePolicy
}

// Provider binds requests to member sessions.
type Provider struct {
	loginURL      *url.URL
	publicBaseURL string
	verifier      *Verifier
	policy        requestmeta.SchemePolicy
}

// NewProvider validates cfg. A provider with no login URL and no secret
// treats every visitor as anonymous.
func NewProvider(cfg Config) (*Provider, error) {
	p := &Provider{
		publicBaseURL: strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/"),
		policy:        cfg.Policy,
	}
	if raw := strings.TrimSpace(cfg.LoginURL); raw != "" {
		parsed, err := url.Parse(raw)
		if err != nil || parsed.Host == "" {
			return nil, errors.New("member login url must be absolute")
		}
		p.loginURL = parsed
	}
	if len(cfg.Secret) > 0 || p.loginURL != nil {
		verifier, err := NewVerifier(cfg.Secret, cfg.Issuer)
		if err != nil {
			return nil, err
		}
		p.verifier = verifier
	}
	return p, nil
}

// Enabled reports whether visitors can sign in.
func (p *Provider) Enabled() bool {
	return p != nil && p.loginURL != nil && p.verifier != nil
}

// Middleware attaches the request capability. Cookies that fail verification
// are cleared and the request continues anonymously.
func (p *Provider) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := &session{provider: p}
			if token, ok := sessioncookie.Read(r); ok {
				claims, err := p.verify(token)
				if err != nil {
					logging.FromContext(r.Context()).Debug("member session rejected", "err", err)
					sessioncookie.Clear(w, r, p.policy)
				} else {
					sess.member = claims.Member()
					sess.authenticated = true
				}
			}
			next.ServeHTTP(w, r.WithContext(WithCapability(r.Context(), sess)))
		})
	}
}

// Complete finishes a provider callback: the token is verified and stored in
// the session cookie.
func (p *Provider) Complete(w http.ResponseWriter, r *http.Request) (Member, error) {
	if !p.Enabled() {
		return Member{}, ErrProviderUnavailable
	}
	token := ""
	if r != nil && r.URL != nil {
		token = strings.TrimSpace(r.URL.Query().Get(TokenParam))
	}
	if token == "" {
		return Member{}, ErrInvalidToken
	}
	claims, err := p.verify(token)
	if err != nil {
		return Member{}, err
	}
	expiresAt := time.Time{}
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	sessioncookie.Write(w, r, token, expiresAt, p.policy)
	return claims.Member(), nil
}

// LoginURL returns the provider URL that returns to the callback route.
func (p *Provider) LoginURL(r *http.Request) (string, error) {
	if !p.Enabled() {
		return "", ErrProviderUnavailable
	}
	callback := requestmeta.AbsoluteURL(r, p.policy, routepath.AuthCallback)
	if p.publicBaseURL != "" {
		callback = p.publicBaseURL + routepath.AuthCallback
	}
	target := *p.loginURL
	query := target.Query()
	query.Set(ReturnToParam, callback)
	target.RawQuery = query.Encode()
	return target.String(), nil
}

func (p *Provider) verify(token string) (Claims, error) {
	if p == nil || p.verifier == nil {
		return Claims{}, ErrProviderUnavailable
	}
	return p.verifier.Verify(token)
}

// session is the Capability handed to handlers.
type session struct {
	provider      *Provider
	member        Member
	authenticated bool
}

func (s *session) IsAuthenticated() bool { return s.authenticated }
func (s *session) Member() Member        { return s.member }

func (s *session) Login(w http.ResponseWriter, r *http.Request) {
	target, err := s.provider.LoginURL(r)
	if err != nil {
		logging.FromContext(r.Context()).Warn("member sign in unavailable", "err", err)
		flash.Write(w, r, flash.Error(NoticeSignInFailed), s.provider.policy)
		http.Redirect(w, r, routepath.Auth, http.StatusFound)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (s *session) Logout(w http.ResponseWriter, r *http.Request) {
	sessioncookie.Clear(w, r, s.provider.policy)
	if s.authenticated {
		flash.Write(w, r, flash.Info(NoticeSignedOut), s.provider.policy)
	}
	http.Redirect(w, r, routepath.Root, http.StatusSeeOther)
}
