// Package i18n resolves the request language and the localized printer used by
// web pages.
package i18n

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	platformi18n "github.com/louisbranch/mindmap.space/internal/platform/i18n"
	"github.com/louisbranch/mindmap.space/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "mm_lang"
)

// Localizer provides translated strings for pages.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// LanguageOption represents a supported language in the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	Active bool
}

// Printer returns a catalog-backed printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return catalog.Default().Printer(tag)
}

// ResolveTag determines the best language tag for the request.
// The bool reports whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return platformi18n.DefaultTag(), false
	}
	if r.URL != nil {
		if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
			if tag, ok := platformi18n.ParseTag(value); ok {
				return tag, true
			}
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return platformi18n.MatchTags(tags), false
		}
	}
	return platformi18n.DefaultTag(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer resolves the request language, persisting an explicit
// choice, and returns its printer with the language tag string.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return Printer(tag), tag.String()
}

// LanguageOptions returns the supported languages with the active one marked.
func LanguageOptions(loc Localizer, activeLang string) []LanguageOption {
	active, ok := platformi18n.ParseTag(activeLang)
	if !ok {
		active = platformi18n.DefaultTag()
	}
	supported := platformi18n.SupportedTags()
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		label := tag.String()
		if loc != nil {
			if resolved := strings.TrimSpace(loc.Sprintf("core.language." + tag.String())); resolved != "" {
				label = resolved
			}
		}
		options = append(options, LanguageOption{Tag: tag.String(), Label: label, Active: tag == active})
	}
	return options
}

// LanguageURL returns path with the language param set to tag.
func LanguageURL(path string, rawQuery string, tag string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

// FormatLongDate renders t as a long calendar date, "January 2, 2006" in
// American English. Zero times render empty.
func FormatLongDate(loc Localizer, t time.Time) string {
	if t.IsZero() || loc == nil {
		return ""
	}
	// Day and year are passed as text: printers group digits.
	return strings.NewReplacer(
		"{month}", loc.Sprintf("core.month."+strconv.Itoa(int(t.Month()))),
		"{day}", strconv.Itoa(t.Day()),
		"{year}", strconv.Itoa(t.Year()),
	).Replace(loc.Sprintf("core.date.long"))
}
