package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/mindmap.space/internal/services/web/routepath"
)

const cacheControl = "public, max-age=3600"

type handlers struct {
	files      http.Handler
	motionCSS  string
	motionETag string
}

func newHandlers(files fs.FS, motionCSS string) handlers {
	sum := sha256.Sum256([]byte(motionCSS))
	return handlers{
		files:      withCacheControl(http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(files)))),
		motionCSS:  motionCSS,
		motionETag: `"` + hex.EncodeToString(sum[:8]) + `"`,
	}
}

func (h handlers) handleMotion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", cacheControl)
	w.Header().Set("ETag", h.motionETag)
	http.ServeContent(w, r, "motion.css", time.Time{}, strings.NewReader(h.motionCSS))
}

func withCacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cacheControl)
		next.ServeHTTP(w, r)
	})
}
