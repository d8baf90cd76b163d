package templates

import (
	"strings"

	module "github.com/louisbranch/mindmap.space/internal/services/web/module"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	Viewer       module.Viewer
	// Year is printed in the footer copyright line.
	Year int
}

// Toast is a one-shot notice shown above the page content.
type Toast struct {
	Kind    string
	Message string
}

// ShellOptions configures the document shell around a page body.
type ShellOptions struct {
	Title           string
	MetaDescription string
	MainClass       string
	Toast           *Toast
}

// isCurrentPath reports whether href names the page being rendered.
func isCurrentPath(page PageContext, href string) bool {
	current := strings.TrimSpace(page.CurrentPath)
	if current == "" || strings.Contains(href, "#") {
		return false
	}
	return current == href || strings.TrimSuffix(current, "/") == href
}
