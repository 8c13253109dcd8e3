package controller

import "net/http"

// WithCORS returns a middleware that allows cross-origin calls from origin
// ("*" for any) and short-circuits OPTIONS preflight requests with 204 No
// Content. An empty origin disables the middleware.
func WithCORS(next http.Handler, origin string) http.Handler {
	if origin == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept, X-Request-Id")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Expose-Headers", "X-Request-Id")
		if origin != "*" {
			h.Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
