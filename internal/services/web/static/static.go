// Package static embeds the web assets served under /static/.
package static

import "embed"

// FS exposes web static assets for HTTP serving.
//
//go:embed *.css *.svg
var FS embed.FS
