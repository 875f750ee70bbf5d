package middleware

import "net/http"

// MaxBody caps request body reads at limit bytes. Handlers decoding an
// oversized body receive a *http.MaxBytesError from the reader.
func MaxBody(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
