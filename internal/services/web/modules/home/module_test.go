package home

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/louisbranch/mindmap.space/internal/mindmap/element"
	"github.com/louisbranch/mindmap.space/internal/mindmap/motion"
	"github.com/louisbranch/mindmap.space/internal/platform/logging"
	apperrors "github.com/louisbranch/mindmap.space/internal/services/web/platform/errors"
	"golang.org/x/net/html"
)

func serve(t *testing.T, m Module, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != "/" {
		t.Fatalf("Prefix = %q, want /", mount.Prefix)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func parseBody(t *testing.T, rr *httptest.ResponseRecorder) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(rr.Body.String()))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func findByClass(root *html.Node, class string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, field := range strings.Fields(attr(n, "class")) {
				if field == class {
					found = append(found, n)
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestModuleIDReturnsHome(t *testing.T) {
	t.Parallel()

	if got := New(Config{}).ID(); got != "home" {
		t.Fatalf("ID() = %q, want %q", got, "home")
	}
}

func TestHealthyReflectsGateway(t *testing.T) {
	t.Parallel()

	if New(Config{}).Healthy() {
		t.Fatalf("Healthy() = true without a gateway")
	}
	if !New(Config{Gateway: &fakeGateway{}}).Healthy() {
		t.Fatalf("Healthy() = false with a gateway")
	}
}

func TestIndexPlacesFiveElements(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{records: []element.Record{
		{ID: "a", Label: "Alpha", SphereImage: "https://img.example/a.png", LinkURL: "https://alpha.example"},
		{ID: "b", Label: "Beta", AnimationSpeed: speed(10)},
		{ID: "c"},
		{ID: "d", AnimationSpeed: speed(-3)},
		{ID: "e", Description: "<p>Five <a href=\"https://x.example\">links</a></p><script>alert(1)</script>"},
	}}
	rr := serve(t, New(Config{Gateway: gateway}), httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if gateway.calls != 1 {
		t.Fatalf("gateway calls = %d, want 1", gateway.calls)
	}

	slots := findByClass(parseBody(t, rr), "mm-sphere-slot")
	if len(slots) != 5 {
		t.Fatalf("sphere slots = %d, want 5", len(slots))
	}
	wantStyles := []string{
		"left:10%;top:20%;width:120px;height:120px;--mm-drift-y-duration:20s;--mm-drift-x-duration:24s;--mm-sway-duration:30s",
		"left:35%;top:50%;width:180px;height:180px;--mm-drift-y-duration:10s;--mm-drift-x-duration:12s;--mm-sway-duration:15s",
		"left:60%;top:80%;width:120px;height:120px;",
		"left:85%;top:20%;width:180px;height:180px;--mm-drift-y-duration:20s;",
		"left:10%;top:50%;width:120px;height:120px;",
	}
	for i, slot := range slots {
		if got := attr(slot, "data-index"); got != string(rune('0'+i)) {
			t.Fatalf("slot %d data-index = %q", i, got)
		}
		if got := attr(slot, "style"); !strings.HasPrefix(got, wantStyles[i]) {
			t.Fatalf("slot %d style = %q, want prefix %q", i, got, wantStyles[i])
		}
	}

	body := rr.Body.String()
	if !strings.Contains(body, `aria-label="Open Alpha"`) || !strings.Contains(body, `rel="noopener noreferrer"`) {
		t.Fatalf("linked sphere markup missing: %s", body)
	}
	if strings.Contains(body, "<script>alert") || strings.Contains(body, `href="https://x.example"`) {
		t.Fatalf("description was not sanitized: %s", body)
	}
	if !strings.Contains(body, "<p>Five links</p>") {
		t.Fatalf("sanitized description missing: %s", body)
	}
	if got := len(findByClass(parseBody(t, rr), "mm-sphere__placeholder")); got != 4 {
		t.Fatalf("placeholders = %d, want 4", got)
	}
}

func TestIndexRendersEmptyHeroWhenFetchFails(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	logger := log.NewWithOptions(&buffer, log.Options{Formatter: log.LogfmtFormatter})
	gateway := &fakeGateway{err: apperrors.E(apperrors.KindUnavailable, "cms down")}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(logging.WithLogger(req.Context(), logger))
	rr := serve(t, New(Config{Gateway: gateway}), req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	doc := parseBody(t, rr)
	if got := len(findByClass(doc, "mm-sphere-slot")); got != 0 {
		t.Fatalf("sphere slots = %d, want 0", got)
	}
	spheres := findByClass(doc, "mm-spheres")
	if len(spheres) != 1 || attr(spheres[0], "data-count") != "0" {
		t.Fatalf("spheres container missing or not empty")
	}
	for _, marker := range []string{"level=warn", "collection=mindmapelements", "cms down"} {
		if !strings.Contains(buffer.String(), marker) {
			t.Fatalf("log missing %q: %q", marker, buffer.String())
		}
	}
}

func TestIndexWithoutGatewayStillRenders(t *testing.T) {
	t.Parallel()

	rr := serve(t, New(Config{}), httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "<title>Neural Mindmap</title>") {
		t.Fatalf("title missing: %s", rr.Body.String())
	}
}

func TestIndexInlinesRestingFrames(t *testing.T) {
	t.Parallel()

	rr := serve(t, New(Config{Gateway: &fakeGateway{}}), httptest.NewRequest(http.MethodGet, "/", nil))
	doc := parseBody(t, rr)
	hero := findByClass(doc, "mm-hero-content")
	if len(hero) != 1 || attr(hero[0], "style") != "opacity:1;transform:translateY(0px) scale(1)" {
		t.Fatalf("hero resting frame missing")
	}
	cards := findByClass(doc, "mm-sticky-card")
	if len(cards) != 3 {
		t.Fatalf("sticky cards = %d, want 3", len(cards))
	}
	for i, card := range cards {
		if got := attr(card, "style"); got != "opacity:1;transform:translateY(0px) scale(1)" {
			t.Fatalf("card %d style = %q", i, got)
		}
	}
}

func TestRestingFramesMatchScrollKeyframes(t *testing.T) {
	t.Parallel()

	css := motion.Stylesheet()
	for _, forbidden := range []string{"!important", "@supports not"} {
		if strings.Contains(css, forbidden) {
			t.Fatalf("stylesheet contains %q, which would override inline frames", forbidden)
		}
	}
	hero, cards := restingFrames(3)
	if want := motion.HeroDissolve(0).Style(); hero != want {
		t.Fatalf("hero frame = %q, want %q", hero, want)
	}
	// The hero rests on the first keyframe and every card on the last.
	if !strings.Contains(css, " 0% { opacity: 1; transform: translateY(0px) scale(1); }") {
		t.Fatalf("stylesheet missing hero start keyframe")
	}
	if !strings.Contains(css, "100% { opacity: 1; transform: translateY(0px) scale(1); }") {
		t.Fatalf("stylesheet missing card end keyframe")
	}
	if len(cards) != 3 {
		t.Fatalf("cards = %d, want 3", len(cards))
	}
	for i, card := range cards {
		if want := motion.StickyCardReveal(1).Style(); card != want {
			t.Fatalf("card %d frame = %q, want %q", i, card, want)
		}
	}
}

func TestIndexLocalizesCopy(t *testing.T) {
	t.Parallel()

	rr := serve(t, New(Config{Gateway: &fakeGateway{}}), httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), `lang="pt-BR"`) {
		t.Fatalf("document language not pt-BR")
	}
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	rr := serve(t, New(Config{Gateway: gateway}), httptest.NewRequest(http.MethodGet, "/missing/page", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if gateway.calls != 0 {
		t.Fatalf("gateway calls = %d, want 0", gateway.calls)
	}
}

func TestLoadElementsReturnsEmptyOnError(t *testing.T) {
	t.Parallel()

	s := newService(&fakeGateway{err: errors.New("boom")})
	if got := s.loadElements(t.Context()).Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}
}
