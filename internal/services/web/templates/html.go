package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// htmlWriter writes markup for a component and keeps the first write error.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

// raw writes trusted markup.
func (h *htmlWriter) raw(parts ...string) {
	for _, part := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, part)
	}
}

// text writes escaped character data.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes an escaped attribute with a leading space.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// href writes a sanitized URL attribute.
func (h *htmlWriter) href(name, value string) {
	h.attr(name, string(templ.URL(value)))
}

// classes writes a class attribute from the non-empty names.
func (h *htmlWriter) classes(names ...string) {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			kept = append(kept, name)
		}
	}
	if len(kept) > 0 {
		h.attr("class", strings.Join(kept, " "))
	}
}

func (h *htmlWriter) render(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// children renders the component children carried by the context.
func (h *htmlWriter) children() {
	h.render(templ.GetChildren(h.ctx))
}

// component builds a templ component from a markup function.
func component(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		fn(h)
		return h.err
	})
}
