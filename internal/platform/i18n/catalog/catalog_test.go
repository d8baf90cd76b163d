package catalog

import (
	"strings"
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	t.Parallel()

	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	for _, locale := range []string{BaseLocale, "pt-BR"} {
		if !bundle.HasLocale(locale) {
			t.Fatalf("expected locale %s", locale)
		}
	}
	if got := len(bundle.NamespaceMessages(BaseLocale, "core")); got == 0 {
		t.Fatal("expected en-US core namespace messages")
	}
	if got := len(bundle.NamespaceMessages(BaseLocale, "web")); got == 0 {
		t.Fatal("expected en-US web namespace messages")
	}
}

func TestEmbeddedLocalesTranslateEveryBaseKey(t *testing.T) {
	t.Parallel()

	bundle := Default()
	for _, locale := range bundle.Locales() {
		if missing := bundle.MissingKeys(locale); len(missing) > 0 {
			t.Fatalf("locale %s is missing keys: %s", locale, strings.Join(missing, ", "))
		}
	}
}

func TestPrinterUsesLocaleMessages(t *testing.T) {
	t.Parallel()

	bundle := Default()
	if got := bundle.Printer(language.MustParse("pt-BR")).Sprintf("web.nav.home"); got != "Início" {
		t.Fatalf("pt-BR web.nav.home = %q, want %q", got, "Início")
	}
	if got := bundle.Printer(language.AmericanEnglish).Sprintf("web.footer.copyright", "2026"); got != "© 2026 Neural Mindmap. All rights reserved." {
		t.Fatalf("en-US copyright = %q", got)
	}
}

func TestLoadFromFSFallsBackToBaseLocale(t *testing.T) {
	t.Parallel()

	bundle, err := LoadFromFS(fstest.MapFS{
		"locales/en-US/web.yaml": {Data: []byte("locale: en-US\nnamespace: web\nmessages:\n  web.a: \"A\"\n  web.b: \"B\"\n")},
		"locales/pt-BR/web.yaml": {Data: []byte("locale: pt-BR\nnamespace: web\nmessages:\n  web.a: \"Á\"\n")},
	})
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}
	if got, ok := bundle.Message("pt-BR", "web.b"); !ok || got != "B" {
		t.Fatalf("Message(pt-BR, web.b) = %q, %v", got, ok)
	}
	if got := bundle.Printer(language.MustParse("pt-BR")).Sprintf("web.b"); got != "B" {
		t.Fatalf("printer fallback = %q, want B", got)
	}
	if got := bundle.MissingKeys("pt-BR"); len(got) != 1 || got[0] != "web.b" {
		t.Fatalf("MissingKeys(pt-BR) = %v", got)
	}
}

func TestLoadFromFSRejectsInvalidCatalogs(t *testing.T) {
	t.Parallel()

	base := "locale: en-US\nnamespace: core\nmessages:\n  core.ok: \"ok\"\n"
	tests := []struct {
		name  string
		files fstest.MapFS
	}{
		{
			name:  "no files",
			files: fstest.MapFS{"README.md": {Data: []byte("x")}},
		},
		{
			name: "missing base locale",
			files: fstest.MapFS{
				"locales/pt-BR/core.yaml": {Data: []byte("locale: pt-BR\nnamespace: core\nmessages:\n  core.ok: \"ok\"\n")},
			},
		},
		{
			name: "locale mismatch",
			files: fstest.MapFS{
				"locales/en-US/core.yaml": {Data: []byte("locale: pt-BR\nnamespace: core\nmessages:\n  core.ok: \"ok\"\n")},
			},
		},
		{
			name: "namespace mismatch",
			files: fstest.MapFS{
				"locales/en-US/core.yaml": {Data: []byte("locale: en-US\nnamespace: web\nmessages:\n  web.ok: \"ok\"\n")},
			},
		},
		{
			name: "key outside namespace",
			files: fstest.MapFS{
				"locales/en-US/core.yaml": {Data: []byte(base)},
				"locales/en-US/web.yaml":  {Data: []byte("locale: en-US\nnamespace: web\nmessages:\n  core.bad: \"nope\"\n")},
			},
		},
		{
			name: "empty messages",
			files: fstest.MapFS{
				"locales/en-US/core.yaml": {Data: []byte("locale: en-US\nnamespace: core\n")},
			},
		},
		{
			name: "malformed yaml",
			files: fstest.MapFS{
				"locales/en-US/core.yaml": {Data: []byte("locale: [en-US\n")},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := LoadFromFS(tc.files); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNilBundleIsSafe(t *testing.T) {
	t.Parallel()

	var bundle *Bundle
	if bundle.HasLocale(BaseLocale) {
		t.Fatal("nil bundle should not have locales")
	}
	if _, ok := bundle.Message(BaseLocale, "core.month.1"); ok {
		t.Fatal("nil bundle should not resolve messages")
	}
	if got := bundle.Printer(language.AmericanEnglish).Sprintf("web.nav.home"); got != "web.nav.home" {
		t.Fatalf("nil bundle printer = %q, want key", got)
	}
}
