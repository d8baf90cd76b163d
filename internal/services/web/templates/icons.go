package templates

// iconPaths holds the SVG bodies of the line icons used by the pages, drawn on
// a 24x24 grid.
var iconPaths = map[string]string{
	"activity":   `<path d="M22 12h-4l-3 9L9 3l-3 9H2"/>`,
	"arrow-down": `<path d="M12 5v14"/><path d="m19 12-7 7-7-7"/>`,
	"move-right": `<path d="M18 8l4 4-4 4"/><path d="M2 12h20"/>`,
	"cpu":        `<rect x="4" y="4" width="16" height="16" rx="2"/><rect x="9" y="9" width="6" height="6"/><path d="M9 1v3M15 1v3M9 20v3M15 20v3M20 9h3M20 14h3M1 9h3M1 14h3"/>`,
	"star":       `<path d="M12 2l3.09 6.26L22 9.27l-5 4.87 1.18 6.88L12 17.77l-6.18 3.25L7 14.14 2 9.27l6.91-1.01L12 2z"/>`,
	"globe":      `<circle cx="12" cy="12" r="10"/><path d="M2 12h20"/><path d="M12 2a15.3 15.3 0 0 1 4 10 15.3 15.3 0 0 1-4 10 15.3 15.3 0 0 1-4-10 15.3 15.3 0 0 1 4-10z"/>`,
	"network":    `<rect x="16" y="16" width="6" height="6" rx="1"/><rect x="2" y="16" width="6" height="6" rx="1"/><rect x="9" y="2" width="6" height="6" rx="1"/><path d="M5 16v-3a1 1 0 0 1 1-1h12a1 1 0 0 1 1 1v3"/><path d="M12 12V8"/>`,
	"zap":        `<path d="M13 2 3 14h9l-1 8 10-12h-9l1-8z"/>`,
	"menu":       `<path d="M4 6h16M4 12h16M4 18h16"/>`,
	"user":       `<path d="M19 21v-2a4 4 0 0 0-4-4H9a4 4 0 0 0-4 4v2"/><circle cx="12" cy="7" r="4"/>`,
	"mail":       `<rect x="2" y="4" width="20" height="16" rx="2"/><path d="m22 7-10 6L2 7"/>`,
	"calendar":   `<rect x="3" y="4" width="18" height="18" rx="2"/><path d="M16 2v4M8 2v4M3 10h18"/>`,
	"log-out":    `<path d="M9 21H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h4"/><path d="m16 17 5-5-5-5"/><path d="M21 12H9"/>`,
	"check":      `<path d="M20 6 9 17l-5-5"/>`,
}

// icon writes the named icon, or nothing for unknown names.
func (h *htmlWriter) icon(name string, class string) {
	h.render(Icon(name, class))
}
