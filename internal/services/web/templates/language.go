package templates

import webi18n "github.com/louisbranch/mindmap.space/internal/services/web/platform/i18n"

// LanguageOption represents a supported language option in the UI.
type LanguageOption = webi18n.LanguageOption

// LanguageOptions returns supported language options with active selection.
func LanguageOptions(page PageContext) []LanguageOption {
	return webi18n.LanguageOptions(page.Loc, page.Lang)
}

// ActiveLanguageLabel returns the label for the active language selection.
func ActiveLanguageLabel(page PageContext) string {
	for _, option := range LanguageOptions(page) {
		if option.Active {
			return option.Label
		}
	}
	return ""
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(page PageContext, tag string) string {
	return webi18n.LanguageURL(page.CurrentPath, page.CurrentQuery, tag)
}
