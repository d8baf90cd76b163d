package templates

import (
	"strconv"

	"github.com/a-h/templ"
	routepath "github.com/louisbranch/mindmap.space/internal/services/web/routepath"
)

type navLink struct {
	href string
	key  string
}

var primaryNav = []navLink{
	{href: routepath.Root, key: "web.nav.home"},
	{href: routepath.About, key: "web.nav.about"},
}

// Shell renders the full HTML document around the page body passed as
// children.
func Shell(page PageContext, opts ShellOptions) templ.Component {
	return component(func(h *htmlWriter) {
		title := opts.Title
		brand := T(page.Loc, "web.home.page_title")
		if title == "" {
			title = brand
		} else if title != brand {
			title = title + " | " + brand
		}
		description := opts.MetaDescription
		if description == "" {
			description = T(page.Loc, "web.meta.description")
		}

		h.raw("<!DOCTYPE html><html")
		h.attr("lang", page.Lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(title)
		h.raw(`</title><meta name="description"`)
		h.attr("content", description)
		h.raw(`><link rel="icon" type="image/svg+xml"`)
		h.attr("href", routepath.Favicon)
		h.raw(`><link rel="stylesheet"`)
		h.attr("href", routepath.SiteStylesheet)
		h.raw(`><link rel="stylesheet"`)
		h.attr("href", routepath.MotionStylesheet)
		h.raw(`></head><body class="mm-body">`)

		writeHeader(h, page)
		if opts.Toast != nil && opts.Toast.Message != "" {
			h.raw(`<div role="status"`)
			h.classes("mm-toast", "mm-toast--"+opts.Toast.Kind)
			h.raw(">")
			h.text(opts.Toast.Message)
			h.raw("</div>")
		}
		h.raw(`<main id="main"`)
		h.classes("mm-main", opts.MainClass)
		h.raw(">")
		h.children()
		h.raw("</main>")
		writeFooter(h, page)
		h.raw("</body></html>")
	})
}

func writeHeader(h *htmlWriter, page PageContext) {
	h.raw(`<header class="mm-header"><div class="mm-header__inner">`)
	writeBrand(h, page, "mm-brand")
	h.raw(`<nav class="mm-nav"`)
	h.attr("aria-label", T(page.Loc, "web.nav.menu"))
	h.raw(">")
	writeNavLinks(h, page, "mm-nav__link")
	writeMemberLink(h, page, false)
	writeLanguageMenu(h, page)
	h.raw("</nav>")

	h.raw(`<details class="mm-mobile-menu"><summary class="mm-mobile-menu__toggle"`)
	h.attr("aria-label", T(page.Loc, "web.nav.menu"))
	h.raw(">")
	h.icon("menu", "")
	h.raw(`</summary><nav class="mm-mobile-menu__panel">`)
	writeNavLinks(h, page, "mm-mobile-menu__link")
	writeMemberLink(h, page, true)
	for _, option := range LanguageOptions(page) {
		writeLanguageLink(h, page, option, "mm-mobile-menu__link")
	}
	h.raw("</nav></details>")
	h.raw("</div></header>")
}

func writeBrand(h *htmlWriter, page PageContext, class string) {
	h.raw("<a")
	h.classes(class)
	h.attr("href", routepath.Root)
	h.raw(`><span class="mm-brand__mark" aria-hidden="true"><span class="mm-brand__dot"></span></span><span class="mm-brand__name">`)
	h.text(T(page.Loc, "web.brand.name"))
	h.raw("</span></a>")
}

func writeNavLinks(h *htmlWriter, page PageContext, class string) {
	for _, link := range primaryNav {
		h.raw("<a")
		h.classes(class)
		h.attr("href", link.href)
		if isCurrentPath(page, link.href) {
			h.attr("aria-current", "page")
		}
		h.raw(">")
		h.text(T(page.Loc, link.key))
		h.raw("</a>")
	}
}

// writeMemberLink renders the member chip for signed-in visitors and the sign
// in call to action otherwise.
func writeMemberLink(h *htmlWriter, page PageContext, compact bool) {
	viewer := page.Viewer
	if !viewer.SignedIn {
		h.raw("<a")
		if compact {
			h.classes("mm-mobile-menu__link")
		} else {
			h.classes("mm-button", "mm-button--accent")
		}
		h.attr("href", routepath.Auth)
		h.raw(">")
		h.text(T(page.Loc, "web.nav.sign_in"))
		h.raw("</a>")
		return
	}

	label := viewer.DisplayName
	if label == "" || compact {
		label = T(page.Loc, "web.nav.profile")
	}
	h.raw("<a")
	if compact {
		h.classes("mm-mobile-menu__link")
	} else {
		h.classes("mm-member-chip")
	}
	h.attr("href", routepath.Profile)
	if isCurrentPath(page, routepath.Profile) {
		h.attr("aria-current", "page")
	}
	h.raw(">")
	if !compact {
		if viewer.PhotoURL != "" {
			h.raw(`<img class="mm-member-chip__avatar" alt="" width="32" height="32"`)
			h.href("src", viewer.PhotoURL)
			h.raw(">")
		} else {
			h.raw(`<span class="mm-member-chip__avatar" aria-hidden="true">`)
			h.text(viewer.Initial)
			h.raw("</span>")
		}
	}
	h.raw(`<span class="mm-member-chip__name">`)
	h.text(label)
	h.raw("</span></a>")
}

func writeLanguageMenu(h *htmlWriter, page PageContext) {
	h.raw(`<details class="mm-lang"><summary class="mm-lang__toggle"`)
	h.attr("aria-label", T(page.Loc, "web.nav.language"))
	h.raw(">")
	h.text(ActiveLanguageLabel(page))
	h.raw(`</summary><div class="mm-lang__menu">`)
	for _, option := range LanguageOptions(page) {
		writeLanguageLink(h, page, option, "mm-lang__option")
	}
	h.raw("</div></details>")
}

func writeLanguageLink(h *htmlWriter, page PageContext, option LanguageOption, class string) {
	h.raw("<a")
	h.classes(class)
	h.attr("href", LanguageURL(page, option.Tag))
	h.attr("hreflang", option.Tag)
	h.attr("lang", option.Tag)
	if option.Active {
		h.attr("aria-current", "true")
	}
	h.raw(">")
	h.text(option.Label)
	h.raw("</a>")
}

type footerColumn struct {
	titleKey string
	links    []navLink
}

var footerColumns = []footerColumn{
	{titleKey: "web.footer.product", links: []navLink{
		{href: routepath.About, key: "web.footer.features"},
		{href: routepath.Auth, key: "web.footer.pricing"},
		{href: routepath.Root, key: "web.footer.updates"},
	}},
	{titleKey: "web.footer.company", links: []navLink{
		{href: routepath.About, key: "web.footer.about"},
		{href: routepath.Root, key: "web.footer.community"},
		{href: routepath.Root, key: "web.footer.contact"},
	}},
}

func writeFooter(h *htmlWriter, page PageContext) {
	h.raw(`<footer class="mm-footer"><div class="mm-footer__inner"><div class="mm-footer__grid"><div class="mm-footer__brand">`)
	writeBrand(h, page, "mm-brand mm-brand--inverse")
	h.raw(`<p class="mm-footer__blurb">`)
	h.text(T(page.Loc, "web.footer.blurb"))
	h.raw("</p></div>")
	for _, column := range footerColumns {
		h.raw(`<div class="mm-footer__column"><h4 class="mm-footer__title">`)
		h.text(T(page.Loc, column.titleKey))
		h.raw("</h4><ul>")
		for _, link := range column.links {
			h.raw("<li><a")
			h.attr("href", link.href)
			h.raw(">")
			h.text(T(page.Loc, link.key))
			h.raw("</a></li>")
		}
		h.raw("</ul></div>")
	}
	h.raw(`</div><div class="mm-footer__bottom"><p class="mm-footer__copyright">`)
	// The year is passed as text: printers group digits.
	h.text(T(page.Loc, "web.footer.copyright", strconv.Itoa(page.Year)))
	h.raw(`</p><div class="mm-footer__legal"><a`)
	h.attr("href", routepath.Root)
	h.raw(">")
	h.text(T(page.Loc, "web.footer.privacy"))
	h.raw("</a><a")
	h.attr("href", routepath.Root)
	h.raw(">")
	h.text(T(page.Loc, "web.footer.terms"))
	h.raw("</a></div></div></div></footer>")
}
