package delivery

import (
	"context"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type ctxKey int

const requestIDKey ctxKey = iota

const RequestIDHeader = "X-Request-ID"

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// RequestLogger tags every request with a uuid and logs it once it is served.
func RequestLogger(log *logger.ZapLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			level := "info"
			switch {
			case status >= 500:
				level = "error"
			case status >= 400:
				level = "warn"
			}

			log.Log(logger.LogEntry{
				Level:   level,
				Message: "request served",
				Fields: map[string]any{
					"requestID": id,
					"method":    r.Method,
					"path":      r.URL.Path,
					"status":    status,
					"bytes":     ww.BytesWritten(),
					"latencyMs": time.Since(start).Milliseconds(),
				},
			})
		})
	}
}
