// Package catalog loads translated UI messages from YAML files and exposes
// them as x/text message printers.
//
// Files live at locales/<locale>/<namespace>.yaml and declare the locale and
// namespace they hold; both must match the path. Keys are prefixed by their
// namespace and unique per locale.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	xcatalog "golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the source locale every other locale is translated from.
const BaseLocale = "en-US"

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

type localeCatalog struct {
	namespaces map[string]map[string]string
	messages   map[string]string
}

// Bundle holds every locale catalog and the x/text catalog built from them.
type Bundle struct {
	locales map[string]*localeCatalog
	builder *xcatalog.Builder
}

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var defaultBundle = mustLoadEmbedded()

// Default returns the process-wide embedded bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads every catalog file under locales/ in catalogFS.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	slices.Sort(paths)

	bundle := &Bundle{locales: map[string]*localeCatalog{}}
	for _, p := range paths {
		data, err := fs.ReadFile(catalogFS, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := bundle.addFile(p, file); err != nil {
			return nil, err
		}
	}
	if !bundle.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	if err := bundle.build(); err != nil {
		return nil, err
	}
	return bundle, nil
}

func (b *Bundle) addFile(p string, file catalogFile) error {
	localeFromPath := path.Base(path.Dir(p))
	namespaceFromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))

	locale := strings.TrimSpace(file.Locale)
	switch {
	case locale == "":
		return fmt.Errorf("catalog %s: locale is required", p)
	case locale != localeFromPath:
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, locale, localeFromPath)
	}
	if _, err := language.Parse(locale); err != nil {
		return fmt.Errorf("catalog %s: invalid locale %q: %w", p, locale, err)
	}
	namespace := strings.TrimSpace(file.Namespace)
	switch {
	case namespace == "":
		return fmt.Errorf("catalog %s: namespace is required", p)
	case namespace != namespaceFromPath:
		return fmt.Errorf("catalog %s: namespace %q must match filename namespace %q", p, namespace, namespaceFromPath)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages are required", p)
	}

	lc, ok := b.locales[locale]
	if !ok {
		lc = &localeCatalog{namespaces: map[string]map[string]string{}, messages: map[string]string{}}
		b.locales[locale] = lc
	}
	if _, exists := lc.namespaces[namespace]; exists {
		return fmt.Errorf("catalog %s: namespace %q already defined for locale %q", p, namespace, locale)
	}
	ns := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if !strings.HasPrefix(key, namespace+".") {
			return fmt.Errorf("catalog %s: key %q must start with namespace %q", p, key, namespace)
		}
		if _, exists := lc.messages[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, key, locale)
		}
		lc.messages[key] = value
		ns[key] = value
	}
	lc.namespaces[namespace] = ns
	return nil
}

// build registers every message in a private x/text catalog. Locales missing
// a key inherit the base locale message.
func (b *Bundle) build() error {
	builder := xcatalog.NewBuilder(xcatalog.Fallback(language.MustParse(BaseLocale)))
	base := b.locales[BaseLocale].messages
	for _, locale := range b.Locales() {
		tag := language.MustParse(locale)
		messages := b.locales[locale].messages
		for _, key := range sortedKeys(base) {
			value, ok := messages[key]
			if !ok {
				value = base[key]
			}
			if err := builder.SetString(tag, key, value); err != nil {
				return fmt.Errorf("register %s %q: %w", locale, key, err)
			}
		}
		for _, key := range sortedKeys(messages) {
			if _, inBase := base[key]; inBase {
				continue
			}
			if err := builder.SetString(tag, key, messages[key]); err != nil {
				return fmt.Errorf("register %s %q: %w", locale, key, err)
			}
		}
	}
	b.builder = builder
	return nil
}

// Printer returns a printer for tag backed by this bundle.
func (b *Bundle) Printer(tag language.Tag) *message.Printer {
	if b == nil || b.builder == nil {
		return message.NewPrinter(tag)
	}
	return message.NewPrinter(tag, message.Catalog(b.builder))
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns the sorted locale identifiers.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	slices.Sort(out)
	return out
}

// Message returns one message with base-locale fallback.
func (b *Bundle) Message(locale, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	if lc, ok := b.locales[strings.TrimSpace(locale)]; ok {
		if value, exists := lc.messages[key]; exists {
			return value, true
		}
	}
	if base, ok := b.locales[BaseLocale]; ok {
		value, exists := base.messages[key]
		return value, exists
	}
	return "", false
}

// NamespaceMessages returns a copy of one namespace of a locale.
func (b *Bundle) NamespaceMessages(locale, namespace string) map[string]string {
	out := map[string]string{}
	if b == nil {
		return out
	}
	lc, ok := b.locales[strings.TrimSpace(locale)]
	if !ok {
		return out
	}
	for key, value := range lc.namespaces[strings.TrimSpace(namespace)] {
		out[key] = value
	}
	return out
}

// MissingKeys returns the base locale keys that locale does not translate.
func (b *Bundle) MissingKeys(locale string) []string {
	if b == nil {
		return nil
	}
	base, ok := b.locales[BaseLocale]
	if !ok {
		return nil
	}
	lc := b.locales[strings.TrimSpace(locale)]
	var missing []string
	for _, key := range sortedKeys(base.messages) {
		if lc == nil {
			missing = append(missing, key)
			continue
		}
		if _, ok := lc.messages[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func mustLoadEmbedded() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return bundle
}
