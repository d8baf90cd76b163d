// Package i18n defines the languages the product is translated into and how
// arbitrary language tags map onto them.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	supportedTags = []language.Tag{language.AmericanEnglish, language.BrazilianPortuguese}
	matcher       = language.NewMatcher(supportedTags)
)

// SupportedTags returns the supported language tags, default first.
func SupportedTags() []language.Tag {
	return append([]language.Tag(nil), supportedTags...)
}

// DefaultTag returns the language used when nothing better matches.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag maps value onto a supported tag. It reports false when value is
// not a valid tag or no supported language is close enough.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultTag(), false
	}
	return supportedTags[index], true
}

// MatchTags returns the supported tag that best serves a preference list,
// such as the one parsed from Accept-Language.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}
