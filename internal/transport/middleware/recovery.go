package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/roleplay-admin/pkg/ctxutil"
)

// Recovery turns a handler panic into a logged 500. The log line carries the
// request id and admin name so the console error toast can be traced back.
// If the handler already started its response, only the log is written.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tw := &startedWriter{ResponseWriter: w}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				ctx := r.Context()
				logger.ErrorContext(ctx, "handler panicked",
					slog.Any("panic", rec),
					slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
					slog.String("admin", ctxutil.UserNameFromCtx(ctx)),
					slog.String("route", r.Method+" "+r.URL.Path),
					slog.Bool("response_started", tw.started),
					slog.String("stack", string(debug.Stack())),
				)
				if !tw.started {
					writeError(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(tw, r)
		})
	}
}

type startedWriter struct {
	http.ResponseWriter
	started bool
}

func (w *startedWriter) WriteHeader(code int) {
	w.started = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *startedWriter) Write(b []byte) (int, error) {
	w.started = true
	return w.ResponseWriter.Write(b)
}

func (w *startedWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
