package templates

import (
	"github.com/a-h/templ"
	routepath "github.com/louisbranch/mindmap.space/internal/services/web/routepath"
)

// AuthView is the data rendered by AuthPage.
type AuthView struct {
	// Register selects the registration tab; sign in is the default.
	Register bool
	Features []string
	// ProviderReady is false when no identity provider is configured.
	ProviderReady bool
}

// AuthPage renders the sign-in/register page body.
func AuthPage(page PageContext, view AuthView) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="mm-auth"><div class="mm-container mm-auth__layout">`)

		h.raw(`<section class="mm-auth__brand mm-fade-in"><div class="mm-auth__burst" aria-hidden="true">`)
		for i := 0; i < 16; i++ {
			h.raw(`<span class="mm-auth__ray" style="transform:translate(-50%,-100%) rotate(`, formatFloat(float64(i)*22.5), `deg)"></span>`)
		}
		h.raw(`</div><h1 class="mm-auth__welcome">`)
		h.text(T(page.Loc, "web.auth.welcome.heading"))
		h.raw(`</h1><p class="mm-auth__intro">`)
		h.text(T(page.Loc, "web.auth.welcome.body"))
		h.raw(`</p><ul class="mm-auth__features">`)
		for _, feature := range view.Features {
			h.raw("<li>")
			h.icon("check", "mm-auth__check")
			h.raw("<span>")
			h.text(feature)
			h.raw("</span></li>")
		}
		h.raw("</ul></section>")

		h.raw(`<section class="mm-auth__panel mm-rise"><div class="mm-tabs" role="tablist">`)
		writeAuthTab(h, page, routepath.AuthModeSignIn, "web.auth.tab.sign_in", !view.Register)
		writeAuthTab(h, page, routepath.AuthModeRegister, "web.auth.tab.register", view.Register)
		h.raw("</div>")

		prefix := "web.auth.sign_in."
		mode := routepath.AuthModeSignIn
		if view.Register {
			prefix = "web.auth.register."
			mode = routepath.AuthModeRegister
		}
		h.raw(`<div class="mm-auth__form" role="tabpanel"`)
		h.attr("data-mode", mode)
		h.raw(`><h2 class="mm-auth__heading">`)
		h.text(T(page.Loc, prefix+"heading"))
		h.raw(`</h2><p class="mm-auth__body">`)
		h.text(T(page.Loc, prefix+"body"))
		h.raw("</p>")
		if view.ProviderReady {
			h.raw(`<a class="mm-button mm-button--accent mm-button--block"`)
			h.attr("href", routepath.AuthLogin)
			h.raw(">")
			h.text(T(page.Loc, prefix+"action"))
			h.raw("</a>")
		} else {
			h.raw(`<button class="mm-button mm-button--accent mm-button--block" type="button" disabled>`)
			h.text(T(page.Loc, prefix+"action"))
			h.raw("</button>")
		}
		h.raw(`<p class="mm-auth__note">`)
		if view.Register {
			h.text(T(page.Loc, "web.auth.register.terms"))
		} else {
			h.text(T(page.Loc, "web.auth.sign_in.note"))
		}
		h.raw(`</p></div><p class="mm-auth__toggle"><a`)
		if view.Register {
			h.attr("href", routepath.AuthWithMode(routepath.AuthModeSignIn))
			h.raw(">")
			h.text(T(page.Loc, "web.auth.toggle.to_sign_in"))
		} else {
			h.attr("href", routepath.AuthWithMode(routepath.AuthModeRegister))
			h.raw(">")
			h.text(T(page.Loc, "web.auth.toggle.to_register"))
		}
		h.raw("</a></p></section></div></div>")
	})
}

func writeAuthTab(h *htmlWriter, page PageContext, mode string, key string, active bool) {
	h.raw(`<a role="tab"`)
	h.classes("mm-tabs__tab", activeClass(active, "mm-tabs__tab--active"))
	h.attr("href", routepath.AuthWithMode(mode))
	if active {
		h.attr("aria-selected", "true")
	} else {
		h.attr("aria-selected", "false")
	}
	h.raw(">")
	h.text(T(page.Loc, key))
	h.raw("</a>")
}

func activeClass(active bool, class string) string {
	if active {
		return class
	}
	return ""
}
