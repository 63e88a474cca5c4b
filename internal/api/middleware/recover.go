package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/crudsuite/internal/api/shared"
	"github.com/phrazzld/crudsuite/internal/platform/logger"
)

// Recover turns a panic in a handler into a JSON 500. The stack goes to the
// log only.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.FromContextOrDefault(r.Context(), slog.Default()).Error("panic recovered",
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path))
			shared.RespondWithError(w, r, http.StatusInternalServerError, shared.MessageInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}
