// Package observability provides request logging for the web service.
package observability

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/louisbranch/mindmap.space/internal/platform/logging"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// RequestLogger logs one line per request after it completes. A nil logger
// falls back to the request context logger.
func RequestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(recorder, r)

			status := recorder.status
			if status == 0 {
				status = http.StatusOK
			}
			l := logger
			if l == nil {
				l = logging.FromContext(r.Context())
			}
			keyvals := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", recorder.bytes,
				"latency", time.Since(start).Round(time.Microsecond).String(),
			}
			if id := r.Header.Get("X-Request-ID"); id != "" {
				keyvals = append(keyvals, "request_id", id)
			}
			switch {
			case status >= http.StatusInternalServerError:
				l.Error("http request", keyvals...)
			case status >= http.StatusBadRequest:
				l.Warn("http request", keyvals...)
			default:
				l.Info("http request", keyvals...)
			}
		})
	}
}
