package controller

import (
	"drills/pkg/logger"
	"net/http"

	"go.uber.org/zap"
)

// WithRecovery returns a middleware that converts a panic in next into a
// logged 500 response with an INTERNAL error body.
func WithRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler { //nolint: errorlint
				panic(p)
			}

			logger.Error(r.Context(), "captured panic in handler", zap.Any("panic", p), zap.Stack("stack"))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":"INTERNAL","message":"internal error"}`))
		}()

		next.ServeHTTP(w, r)
	})
}
