// Package requestmeta derives normalized scheme and origin facts from requests.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how the request scheme is resolved.
//
// X-Forwarded-Proto is only read when TrustForwardedProto is set, which is the
// case behind a TLS-terminating proxy.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// origin is a scheme, host and port triple with the default port filled in.
type origin struct {
	scheme string
	host   string
	port   string
}

func (o origin) valid() bool {
	return o.scheme != "" && o.host != "" && o.port != ""
}

// Scheme returns "https" or "http" for r.
func Scheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		if forwarded := normalizeScheme(r.Header.Get("X-Forwarded-Proto")); forwarded != "" {
			return forwarded
		}
	}
	if r.URL != nil {
		if scheme := normalizeScheme(r.URL.Scheme); scheme != "" {
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// IsHTTPS reports whether r should be treated as HTTPS, which decides the
// Secure attribute of cookies.
func IsHTTPS(r *http.Request, policy SchemePolicy) bool {
	return Scheme(r, policy) == "https"
}

// HasSameOriginProof reports whether the Origin header, or the Referer when
// Origin is absent, names the origin r was sent to.
func HasSameOriginProof(r *http.Request, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	target := requestOrigin(r, policy)
	if !target.valid() {
		return false
	}
	claimed := strings.TrimSpace(r.Header.Get("Origin"))
	if claimed == "" {
		claimed = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if claimed == "" {
		return false
	}
	source, ok := parseOrigin(claimed)
	return ok && source == target
}

// AbsoluteURL resolves path against the origin r was sent to.
func AbsoluteURL(r *http.Request, policy SchemePolicy, path string) string {
	if r == nil {
		return path
	}
	host := strings.TrimSpace(r.Host)
	if host == "" && r.URL != nil {
		host = r.URL.Host
	}
	if host == "" {
		return path
	}
	return (&url.URL{Scheme: Scheme(r, policy), Host: host, Path: path}).String()
}

func requestOrigin(r *http.Request, policy SchemePolicy) origin {
	scheme := Scheme(r, policy)
	host, port := splitHost(r.Host)
	if host == "" && r.URL != nil {
		host, port = splitHost(r.URL.Host)
	}
	if port == "" {
		port = defaultPort(scheme)
	}
	return origin{scheme: scheme, host: host, port: port}
}

func parseOrigin(raw string) (origin, bool) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return origin{}, false
	}
	o := origin{
		scheme: normalizeScheme(parsed.Scheme),
		host:   strings.ToLower(parsed.Hostname()),
		port:   parsed.Port(),
	}
	if o.port == "" {
		o.port = defaultPort(o.scheme)
	}
	return o, o.valid()
}

func splitHost(rawHost string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(rawHost))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(parsed.Hostname()), parsed.Port()
}

func normalizeScheme(raw string) string {
	switch scheme := strings.ToLower(strings.TrimSpace(raw)); scheme {
	case "http", "https":
		return scheme
	default:
		return ""
	}
}

func defaultPort(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}
