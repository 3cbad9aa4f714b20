package middleware

import (
	"net/http"
	"time"

	"family-site-go/pkg/logger"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger writes one access log line per request through log.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return chimw.RequestLogger(&logFormatter{log: log})
}

type logFormatter struct {
	log logger.Logger
}

func (f *logFormatter) NewLogEntry(r *http.Request) chimw.LogEntry {
	return &logEntry{
		log: f.log.With(
			"request_id", chimw.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		),
	}
}

type logEntry struct {
	log logger.Logger
}

func (e *logEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	args := []any{"status", status, "bytes", bytes, "elapsed_ms", elapsed.Milliseconds()}
	switch {
	case status >= http.StatusInternalServerError:
		e.log.Error("http: request served", args...)
	case status >= http.StatusBadRequest:
		e.log.Warn("http: request served", args...)
	default:
		e.log.Info("http: request served", args...)
	}
}

func (e *logEntry) Panic(v interface{}, stack []byte) {
	e.log.Critical("http: panic recovered", "panic", v, "stack", string(stack))
}
