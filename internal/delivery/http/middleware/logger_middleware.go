package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const traceIDHeader = "X-Trace-Id"

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

type LoggerMiddleware struct {
	log *logrus.Logger
}

func NewLoggerMiddleware(log *logrus.Logger) *LoggerMiddleware {
	return &LoggerMiddleware{log: log}
}

// Handle tags the request with a trace id (taken from X-Trace-Id or generated)
// and logs one line per request once it completes.
func (m *LoggerMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}
		w.Header().Set(traceIDHeader, traceID)

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		entry := m.log.WithFields(logrus.Fields{
			"trace_id": traceID,
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rw.statusCode,
			"duration": time.Since(start).String(),
		})
		switch {
		case rw.statusCode >= http.StatusInternalServerError:
			entry.Error("request failed")
		case rw.statusCode >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request completed")
		}
	})
}
