package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/storylingo-backend/pkg/ctxutil"
)

// Logger returns middleware that writes one access-log line per request.
// Besides method, path, status and timing it records the matched route
// pattern and, for failed requests, the error code reported through
// SetErrorCode. Recovery must run inside Logger for panics to be logged
// as 500s.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			aw := &accessWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(aw, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", aw.status),
				slog.Int("bytes", aw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if r.Pattern != "" {
				attrs = append(attrs, slog.String("route", r.Pattern))
			}
			if r.URL.RawQuery != "" {
				attrs = append(attrs, slog.String("query", r.URL.RawQuery))
			}
			if aw.errorCode != "" {
				attrs = append(attrs, slog.String("error_code", aw.errorCode))
			}

			logger.LogAttrs(r.Context(), accessLevel(aw.status), "http.request", attrs...)
		})
	}
}

// accessLevel is ERROR for server failures and WARN when the LLM provider
// limits us (429 rate limit, 402 quota), which needs operator attention.
func accessLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status == http.StatusTooManyRequests, status == http.StatusPaymentRequired:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// SetErrorCode attaches the machine-readable error code of a failed
// response to the access-log entry. It is a no-op when w is not wrapped by
// Logger.
func SetErrorCode(w http.ResponseWriter, code string) {
	for w != nil {
		if aw, ok := w.(*accessWriter); ok {
			aw.errorCode = code
			return
		}
		u, ok := w.(interface{ Unwrap() http.ResponseWriter })
		if !ok {
			return
		}
		w = u.Unwrap()
	}
}

// accessWriter captures status, body size and error code of a response.
type accessWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	errorCode   string
	wroteHeader bool
}

func (w *accessWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *accessWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *accessWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
