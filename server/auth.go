package server

import (
	"net/http"
	"strings"
)

// authMiddleware requires a matching "Authorization: Bearer <token>" header
// on every request when tokens is non-empty. An empty tokens list disables
// authentication entirely, which is the default for local/dev use.
func authMiddleware(tokens []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		allowed[t] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		if len(allowed) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token := strings.TrimPrefix(header, "Bearer ")
			if token == header || token == "" {
				respondWithError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			if _, ok := allowed[token]; !ok {
				respondWithError(w, http.StatusUnauthorized, "invalid bearer token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
