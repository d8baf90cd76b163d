package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestResolveTagPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		target      string
		cookie      string
		accept      string
		wantTag     language.Tag
		wantPersist bool
	}{
		{name: "default", target: "/", wantTag: language.AmericanEnglish},
		{name: "query wins", target: "/?lang=pt-BR", cookie: "en-US", accept: "en", wantTag: language.BrazilianPortuguese, wantPersist: true},
		{name: "cookie before header", target: "/", cookie: "pt-BR", accept: "en-US", wantTag: language.BrazilianPortuguese},
		{name: "accept language", target: "/", accept: "fr;q=0.9, pt;q=0.8", wantTag: language.BrazilianPortuguese},
		{name: "unsupported query ignored", target: "/?lang=ja", cookie: "pt-BR", wantTag: language.BrazilianPortuguese},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			tag, persist := ResolveTag(req)
			if tag != tc.wantTag || persist != tc.wantPersist {
				t.Fatalf("ResolveTag() = %v, %v, want %v, %v", tag, persist, tc.wantTag, tc.wantPersist)
			}
		})
	}
}

func TestResolveLocalizerPersistsExplicitChoice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil)
	loc, lang := ResolveLocalizer(rr, req)
	if lang != "pt-BR" {
		t.Fatalf("lang = %q, want pt-BR", lang)
	}
	if got := loc.Sprintf("web.nav.home"); got != "Início" {
		t.Fatalf("web.nav.home = %q, want Início", got)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName || cookies[0].Value != "pt-BR" {
		t.Fatalf("cookies = %+v", cookies)
	}

	rr = httptest.NewRecorder()
	ResolveLocalizer(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if got := len(rr.Result().Cookies()); got != 0 {
		t.Fatalf("cookies without explicit choice = %d, want 0", got)
	}
}

func TestLanguageOptionsMarksActive(t *testing.T) {
	t.Parallel()

	options := LanguageOptions(Printer(language.AmericanEnglish), "pt-BR")
	if len(options) != 2 {
		t.Fatalf("len(options) = %d, want 2", len(options))
	}
	if options[0].Active || !options[1].Active {
		t.Fatalf("active flags = %v, %v", options[0].Active, options[1].Active)
	}
	if options[0].Label != "English" {
		t.Fatalf("label = %q, want English", options[0].Label)
	}
}

func TestLanguageURL(t *testing.T) {
	t.Parallel()

	if got := LanguageURL("/auth", "mode=register", "pt-BR"); got != "/auth?lang=pt-BR&mode=register" {
		t.Fatalf("LanguageURL() = %q", got)
	}
	if got := LanguageURL("", "", "en-US"); got != "/?lang=en-US" {
		t.Fatalf("LanguageURL() = %q", got)
	}
}

func TestFormatLongDate(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)
	if got := FormatLongDate(Printer(language.AmericanEnglish), at); got != "March 7, 2026" {
		t.Fatalf("en-US = %q", got)
	}
	if got := FormatLongDate(Printer(language.BrazilianPortuguese), at); got != "7 de março de 2026" {
		t.Fatalf("pt-BR = %q", got)
	}
	if got := FormatLongDate(Printer(language.AmericanEnglish), time.Time{}); got != "" {
		t.Fatalf("zero time = %q, want empty", got)
	}
}
