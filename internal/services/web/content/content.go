// Package content holds the marketing copy of the public pages.
//
// Copy lives in one YAML document per locale under locales/. Documents are
// validated when loaded; a locale without a document falls back to the base
// locale.
package content

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	platformi18n "github.com/louisbranch/mindmap.space/internal/platform/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other document falls back to.
const BaseLocale = "en-US"

// StickyCardCount is the number of narrative cards on the home page.
const StickyCardCount = 3

// Card kinds of the intro grid.
const (
	KindFeature = "feature"
	KindIcon    = "icon"
	KindImage   = "image"
)

// Card tones of the intro grid.
const (
	ToneAccent = "accent"
	ToneDark   = "dark"
	ToneMuted  = "muted"
)

// Document is the copy of one locale.
type Document struct {
	Locale   string   `yaml:"locale"`
	Intro    Intro    `yaml:"intro"`
	Dynamics Dynamics `yaml:"dynamics"`
	Journey  Journey  `yaml:"journey"`
	Auth     Auth     `yaml:"auth"`
}

// Intro is the bento grid below the hero.
type Intro struct {
	Heading       string      `yaml:"heading"`
	HeadingAccent string      `yaml:"heading_accent"`
	Cards         []BentoCard `yaml:"cards"`
}

// BentoCard is one tile of the intro grid. Span is its width in a 12 column
// grid.
type BentoCard struct {
	Kind     string `yaml:"kind"`
	Tone     string `yaml:"tone"`
	Span     int    `yaml:"span"`
	Title    string `yaml:"title"`
	Body     string `yaml:"body"`
	Action   string `yaml:"action"`
	Icon     string `yaml:"icon"`
	Image    string `yaml:"image"`
	ImageAlt string `yaml:"image_alt"`
}

// Dynamics is the sticky scroll narrative.
type Dynamics struct {
	Heading       string       `yaml:"heading"`
	HeadingAccent string       `yaml:"heading_accent"`
	Body          string       `yaml:"body"`
	Status        string       `yaml:"status"`
	Cards         []StickyCard `yaml:"cards"`
}

// StickyCard is one card revealed while scrolling the narrative.
type StickyCard struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	Image string `yaml:"image"`
}

// Journey is the closing call to action.
type Journey struct {
	Heading       string       `yaml:"heading"`
	HeadingAccent string       `yaml:"heading_accent"`
	Body          string       `yaml:"body"`
	Action        string       `yaml:"action"`
	Columns       []LinkColumn `yaml:"columns"`
}

// LinkColumn is a titled list of link labels.
type LinkColumn struct {
	Title string   `yaml:"title"`
	Links []string `yaml:"links"`
}

// Auth is the copy beside the sign-in form.
type Auth struct {
	Features []string `yaml:"features"`
}

// Library holds the documents of every locale.
type Library struct {
	docs map[string]Document
}

//go:embed locales/*.yaml
var embeddedFS embed.FS

var defaultLibrary = mustLoadEmbedded()

// Default returns the embedded library.
func Default() *Library {
	return defaultLibrary
}

// LoadFromFS reads every locales/*.yaml document in contentFS.
func LoadFromFS(contentFS fs.FS) (*Library, error) {
	paths, err := fs.Glob(contentFS, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob content documents: %w", err)
	}
	slices.Sort(paths)

	lib := &Library{docs: map[string]Document{}}
	for _, p := range paths {
		data, err := fs.ReadFile(contentFS, p)
		if err != nil {
			return nil, fmt.Errorf("read content %s: %w", p, err)
		}
		var doc Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse content %s: %w", p, err)
		}
		locale := strings.TrimSuffix(path.Base(p), ".yaml")
		if doc.Locale != locale {
			return nil, fmt.Errorf("content %s declares locale %q", p, doc.Locale)
		}
		if err := doc.validate(); err != nil {
			return nil, fmt.Errorf("content %s: %w", p, err)
		}
		lib.docs[locale] = doc
	}
	if _, ok := lib.docs[BaseLocale]; !ok {
		return nil, fmt.Errorf("content for base locale %s is missing", BaseLocale)
	}
	return lib, nil
}

func mustLoadEmbedded() *Library {
	lib, err := LoadFromFS(embeddedFS)
	if err != nil {
		panic(fmt.Sprintf("load embedded content: %v", err))
	}
	return lib
}

// For returns the document for tag, falling back to the base locale.
func (l *Library) For(tag language.Tag) Document {
	if l == nil {
		return Document{}
	}
	if doc, ok := l.docs[tag.String()]; ok {
		return doc
	}
	if matched, ok := platformi18n.ParseTag(tag.String()); ok {
		if doc, ok := l.docs[matched.String()]; ok {
			return doc
		}
	}
	return l.docs[BaseLocale]
}

// Locales lists the locales with a document.
func (l *Library) Locales() []string {
	if l == nil {
		return nil
	}
	locales := make([]string, 0, len(l.docs))
	for locale := range l.docs {
		locales = append(locales, locale)
	}
	slices.Sort(locales)
	return locales
}

func (d Document) validate() error {
	if strings.TrimSpace(d.Intro.Heading) == "" {
		return fmt.Errorf("intro heading is required")
	}
	if len(d.Intro.Cards) == 0 {
		return fmt.Errorf("intro cards are required")
	}
	for i, card := range d.Intro.Cards {
		if err := card.validate(); err != nil {
			return fmt.Errorf("intro card %d: %w", i, err)
		}
	}
	if len(d.Dynamics.Cards) != StickyCardCount {
		return fmt.Errorf("dynamics needs %d cards, got %d", StickyCardCount, len(d.Dynamics.Cards))
	}
	for i, card := range d.Dynamics.Cards {
		if strings.TrimSpace(card.Title) == "" || strings.TrimSpace(card.Body) == "" {
			return fmt.Errorf("dynamics card %d needs a title and body", i)
		}
	}
	if strings.TrimSpace(d.Journey.Action) == "" {
		return fmt.Errorf("journey action is required")
	}
	return nil
}

func (c BentoCard) validate() error {
	if c.Span < 1 || c.Span > 12 {
		return fmt.Errorf("span %d outside 1..12", c.Span)
	}
	switch c.Tone {
	case ToneAccent, ToneDark, ToneMuted:
	default:
		return fmt.Errorf("unknown tone %q", c.Tone)
	}
	switch c.Kind {
	case KindFeature:
		if strings.TrimSpace(c.Title) == "" {
			return fmt.Errorf("feature card needs a title")
		}
	case KindIcon:
		if strings.TrimSpace(c.Icon) == "" {
			return fmt.Errorf("icon card needs an icon")
		}
	case KindImage:
		if strings.TrimSpace(c.Image) == "" {
			return fmt.Errorf("image card needs an image")
		}
	default:
		return fmt.Errorf("unknown kind %q", c.Kind)
	}
	return nil
}
