package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/storylingo-backend/pkg/ctxutil"
)

// Recovery returns middleware that turns a handler panic into a JSON 500
// with error code "internal_error". The panic value and stack are logged
// with the request id, so Recovery belongs inside RequestID and Logger.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				p := recover()
				if p == nil {
					return
				}
				if p == http.ErrAbortHandler {
					panic(p)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", p),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				)

				SetErrorCode(w, "internal_error")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{ //nolint:errcheck
					"error":   "internal_error",
					"message": "internal server error",
				})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
