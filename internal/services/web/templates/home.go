package templates

import (
	"fmt"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/mindmap.space/internal/mindmap/motion"
	"github.com/louisbranch/mindmap.space/internal/services/web/content"
	routepath "github.com/louisbranch/mindmap.space/internal/services/web/routepath"
)

// Sphere is one placed mindmap element of the hero.
type Sphere struct {
	ID    string
	Index int
	Label string
	// AltText is used for the image and defaults to a generic node name.
	AltText string
	// DescriptionHTML is sanitized markup.
	DescriptionHTML string
	ImageURL        string
	LinkURL         string

	LeftPercent   int
	TopPercent    int
	SizePx        int
	DriftYSeconds float64
	DriftXSeconds float64
	SwaySeconds   float64
}

// HomeView is the data rendered by HomePage.
type HomeView struct {
	Spheres []Sphere
	Copy    content.Document
	// HeroStyle and CardStyles hold the resting frame of the scroll-linked
	// blocks, shown before any scroll timeline runs.
	HeroStyle  string
	CardStyles []string
}

// HeroRegionID names the scroll region of the hero.
const HeroRegionID = "hero"

// CardRegionID names the scroll region of the sticky card at index.
func CardRegionID(index int) string {
	return "card-" + strconv.Itoa(index)
}

// HomePage renders the landing page body.
func HomePage(page PageContext, view HomeView) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="mm-home">`)
		writeHero(h, page, view)
		writeIntro(h, view.Copy.Intro)
		writeDynamics(h, view)
		writeJourney(h, view.Copy.Journey)
		h.raw("</div>")
	})
}

func writeHero(h *htmlWriter, page PageContext, view HomeView) {
	h.raw(`<section class="mm-hero"`)
	h.attr("data-scroll-region", HeroRegionID)
	h.raw(">")
	h.raw(`<div class="mm-hero__backdrop" aria-hidden="true"></div><div class="mm-hero__grain" aria-hidden="true"></div><div class="mm-hero__grid" aria-hidden="true"></div>`)
	h.raw(`<div class="mm-spheres"`)
	h.attr("data-count", strconv.Itoa(len(view.Spheres)))
	h.raw(">")
	for _, sphere := range view.Spheres {
		writeSphere(h, page, sphere)
	}
	h.raw("</div>")

	h.raw("<div")
	h.classes("mm-hero__content", motion.ClassHeroContent)
	if view.HeroStyle != "" {
		h.attr("style", view.HeroStyle)
	}
	h.raw("><div")
	h.classes(motion.ClassRise)
	h.raw(`><h1 class="mm-hero__title">`)
	h.text(T(page.Loc, "web.home.hero.line_one"))
	h.raw(`<br><span class="mm-gradient-text">`)
	h.text(T(page.Loc, "web.home.hero.line_two"))
	h.raw("</span></h1></div><p")
	h.classes("mm-hero__tagline", motion.ClassFadeIn, "mm-delay-1")
	h.raw(">")
	h.text(T(page.Loc, "web.home.hero.tagline"))
	h.raw("</p><a")
	h.classes("mm-hero__hint", motion.ClassFadeIn, "mm-delay-2")
	h.attr("href", "#intro")
	h.raw(`><span class="mm-sr-only">`)
	h.text(T(page.Loc, "web.home.hero.scroll_hint"))
	h.raw(`</span><span class="mm-hero__line" aria-hidden="true"></span></a></div></section>`)
}

func writeSphere(h *htmlWriter, page PageContext, sphere Sphere) {
	h.raw(`<div class="mm-sphere-slot"`)
	h.attr("data-element-id", sphere.ID)
	h.attr("data-index", strconv.Itoa(sphere.Index))
	h.attr("style", sphereStyle(sphere))
	h.raw("><div")
	h.classes(motion.ClassDriftY)
	h.raw("><div")
	h.classes(motion.ClassDriftX)
	h.raw("><div")
	h.classes(motion.ClassSway)
	h.raw("><div")
	h.classes(motion.ClassSphere)
	h.raw(">")

	if sphere.LinkURL != "" {
		h.raw(`<a class="mm-sphere__body"`)
		h.href("href", sphere.LinkURL)
		h.attr("target", "_blank")
		h.attr("rel", "noopener noreferrer")
		h.attr("aria-label", T(page.Loc, "web.home.sphere.open", sphere.AltText))
		h.raw(">")
	} else {
		h.raw(`<div class="mm-sphere__body">`)
	}
	h.raw(`<span class="mm-sphere__shell" aria-hidden="true"></span><span class="mm-sphere__core">`)
	if sphere.ImageURL != "" {
		h.raw(`<img class="mm-sphere__image" loading="lazy" width="200"`)
		h.href("src", sphere.ImageURL)
		h.attr("alt", sphere.AltText)
		h.raw(">")
	} else {
		h.icon("activity", "mm-sphere__placeholder")
	}
	h.raw("</span><span")
	h.classes("mm-sphere__ring", motion.ClassOrbit)
	h.raw(` aria-hidden="true"></span>`)
	if sphere.Label != "" || sphere.DescriptionHTML != "" {
		h.raw(`<span class="mm-sphere__tooltip">`)
		if sphere.Label != "" {
			h.raw(`<span class="mm-sphere__label">`)
			h.text(sphere.Label)
			h.raw("</span>")
		}
		if sphere.DescriptionHTML != "" {
			h.raw(`<span class="mm-sphere__description">`)
			h.raw(sphere.DescriptionHTML)
			h.raw("</span>")
		}
		h.raw("</span>")
	}
	if sphere.LinkURL != "" {
		h.raw("</a>")
	} else {
		h.raw("</div>")
	}
	h.raw("</div></div></div></div></div>")
}

func sphereStyle(sphere Sphere) string {
	return fmt.Sprintf("left:%d%%;top:%d%%;width:%dpx;height:%dpx;%s:%ss;%s:%ss;%s:%ss",
		sphere.LeftPercent, sphere.TopPercent, sphere.SizePx, sphere.SizePx,
		motion.VarDriftYDuration, formatFloat(sphere.DriftYSeconds),
		motion.VarDriftXDuration, formatFloat(sphere.DriftXSeconds),
		motion.VarSwayDuration, formatFloat(sphere.SwaySeconds),
	)
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func writeIntro(h *htmlWriter, intro content.Intro) {
	h.raw(`<section id="intro" class="mm-intro"><div class="mm-container"><h2 class="mm-intro__heading">`)
	h.text(intro.Heading)
	h.raw(`<br><span class="mm-outline-text">`)
	h.text(intro.HeadingAccent)
	h.raw(`</span></h2><div class="mm-bento">`)
	for i, card := range intro.Cards {
		h.raw("<article")
		h.classes("mm-bento__card", "mm-bento__card--"+card.Kind, "mm-tone--"+card.Tone, "mm-span-"+strconv.Itoa(card.Span), motion.ClassRise)
		h.attr("style", fmt.Sprintf("animation-delay:%ss", formatFloat(float64(i)/10)))
		h.raw(">")
		switch card.Kind {
		case content.KindFeature:
			h.raw(`<div class="mm-bento__text"><h3 class="mm-bento__title">`)
			h.text(card.Title)
			h.raw(`</h3><p class="mm-bento__body">`)
			h.text(card.Body)
			h.raw("</p></div>")
			if card.Action != "" {
				h.raw(`<a class="mm-bento__action"`)
				h.attr("href", routepath.Auth)
				h.raw(">")
				h.text(card.Action)
				h.raw("</a>")
			}
			if card.Icon != "" {
				h.icon(card.Icon, "mm-bento__icon")
			}
		case content.KindIcon:
			cls := "mm-bento__glyph"
			if card.Icon == "star" {
				cls += " " + motion.ClassOrbit
			}
			h.icon(card.Icon, cls)
		case content.KindImage:
			h.raw(`<img class="mm-bento__image" loading="lazy"`)
			h.href("src", card.Image)
			h.attr("alt", card.ImageAlt)
			h.raw(`><span class="mm-bento__caption">`)
			h.text(card.Title)
			h.raw("</span>")
		}
		h.raw("</article>")
	}
	h.raw("</div></div></section>")
}

func writeDynamics(h *htmlWriter, view HomeView) {
	dynamics := view.Copy.Dynamics
	h.raw(`<section class="mm-dynamics"><div class="mm-container mm-dynamics__layout"><div class="mm-dynamics__aside"><div class="mm-dynamics__sticky"><h2 class="mm-dynamics__heading">`)
	h.text(dynamics.Heading)
	h.raw("<br>")
	h.text(dynamics.HeadingAccent)
	h.raw(`</h2><p class="mm-dynamics__body">`)
	h.text(dynamics.Body)
	h.raw(`</p><div class="mm-dynamics__status"><span class="mm-pulse" aria-hidden="true"></span><span>`)
	h.text(dynamics.Status)
	h.raw(`</span></div></div></div><div class="mm-dynamics__cards">`)
	for i, card := range dynamics.Cards {
		h.raw("<article")
		h.classes("mm-card", motion.ClassStickyCard)
		h.attr("data-scroll-region", CardRegionID(i))
		if i < len(view.CardStyles) && view.CardStyles[i] != "" {
			h.attr("style", view.CardStyles[i])
		}
		h.raw(`><div class="mm-card__text"><div class="mm-card__badge">`)
		h.icon(card.Icon, "")
		h.raw(`</div><h3 class="mm-card__title">`)
		h.text(card.Title)
		h.raw(`</h3><p class="mm-card__body">`)
		h.text(card.Body)
		h.raw(`</p></div><div class="mm-card__media">`)
		if card.Image != "" {
			h.raw(`<img loading="lazy"`)
			h.href("src", card.Image)
			h.attr("alt", card.Title)
			h.raw(">")
		}
		h.raw("</div></article>")
	}
	h.raw("</div></div></section>")
}

func writeJourney(h *htmlWriter, journey content.Journey) {
	h.raw(`<section class="mm-journey"><div class="mm-journey__glow" aria-hidden="true"></div><div class="mm-container mm-journey__inner"><h2 class="mm-journey__heading">`)
	h.text(journey.Heading)
	h.raw(`<br><span class="mm-accent-text">`)
	h.text(journey.HeadingAccent)
	h.raw(`</span></h2><p class="mm-journey__body">`)
	h.text(journey.Body)
	h.raw(`</p><a class="mm-button mm-button--accent mm-button--large"`)
	h.attr("href", routepath.AuthWithMode(routepath.AuthModeRegister))
	h.raw(">")
	h.text(journey.Action)
	h.icon("move-right", "")
	h.raw(`</a><div class="mm-journey__columns">`)
	for _, column := range journey.Columns {
		h.raw(`<div class="mm-journey__column"><h4>`)
		h.text(column.Title)
		h.raw("</h4><ul>")
		for _, link := range column.Links {
			h.raw("<li>")
			h.text(link)
			h.raw("</li>")
		}
		h.raw("</ul></div>")
	}
	h.raw("</div></div></section>")
}
