package member

import (
	"context"
	"net/http"
)

// Capability is the identity surface handlers receive for one request.
type Capability interface {
	IsAuthenticated() bool
	Member() Member
	// Login sends the visitor to the identity provider.
	Login(w http.ResponseWriter, r *http.Request)
	// Logout ends the member session and returns the visitor home.
	Logout(w http.ResponseWriter, r *http.Request)
}

type capabilityKey struct{}

// WithCapability returns ctx carrying c.
func WithCapability(ctx context.Context, c Capability) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if c == nil {
		return ctx
	}
	return context.WithValue(ctx, capabilityKey{}, c)
}

// FromContext returns the request capability, or an anonymous one that can
// neither log in nor out when the middleware did not run.
func FromContext(ctx context.Context) Capability {
	if ctx != nil {
		if c, ok := ctx.Value(capabilityKey{}).(Capability); ok {
			return c
		}
	}
	return anonymous{}
}

type anonymous struct{}

func (anonymous) IsAuthenticated() bool { return false }
func (anonymous) Member() Member        { return Member{} }

func (anonymous) Login(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
}

func (anonymous) Logout(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Static is a fixed capability for tests and previews.
type Static struct {
	Record        Member
	Authenticated bool
	OnLogin       http.HandlerFunc
	OnLogout      http.HandlerFunc
}

// IsAuthenticated reports the fixed authentication state.
func (s Static) IsAuthenticated() bool { return s.Authenticated }

// Member returns the fixed member record.
func (s Static) Member() Member { return s.Record }

// Login runs OnLogin when set.
func (s Static) Login(w http.ResponseWriter, r *http.Request) {
	if s.OnLogin != nil {
		s.OnLogin(w, r)
		return
	}
	anonymous{}.Login(w, r)
}

// Logout runs OnLogout when set.
func (s Static) Logout(w http.ResponseWriter, r *http.Request) {
	if s.OnLogout != nil {
		s.OnLogout(w, r)
		return
	}
	anonymous{}.Logout(w, r)
}
