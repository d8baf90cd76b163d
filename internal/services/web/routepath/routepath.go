// Package routepath stores canonical HTTP paths for web modules.
package routepath

import "net/url"

const (
	Root             = "/"
	About            = "/#intro"
	Health           = "/up"
	HealthPrefix     = "/up/"
	Auth             = "/auth"
	AuthPrefix       = "/auth/"
	AuthLogin        = "/auth/login"
	AuthCallback     = "/auth/callback"
	Logout           = "/auth/logout"
	Profile          = "/profile"
	ProfilePrefix    = "/profile/"
	StaticPrefix     = "/static/"
	MotionStylesheet = "/static/motion.css"
	SiteStylesheet   = "/static/site.css"
	Favicon          = "/static/favicon.svg"
)

// AuthModeParam selects the active tab of the auth page.
const AuthModeParam = "mode"

// Auth page modes.
const (
	AuthModeSignIn   = "signin"
	AuthModeRegister = "register"
)

// AuthWithMode returns the auth page path with the given tab selected.
func AuthWithMode(mode string) string {
	if mode == "" || mode == AuthModeSignIn {
		return Auth
	}
	return Auth + "?" + url.Values{AuthModeParam: {mode}}.Encode()
}
