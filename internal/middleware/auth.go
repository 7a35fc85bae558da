package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/bloglist/internal/auth"

	log "github.com/sirupsen/logrus"
)

// Identity resolves the bearer token of the request, if present, and
// stores the resolved user id in the request context. It never rejects
// a request on its own: which operations require an identity is decided
// in the handlers, since most of the blogs API is open.
func Identity(resolver auth.TokenResolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := resolver.ResolveToken(r.Context(), token)
			if err != nil {
				if !errors.Is(err, auth.ErrInvalidToken) {
					log.Errorf("[identity middleware] resolve token: %s", err)
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(
				auth.ContextWithUserID(r.Context(), userID),
			))
		})
	}
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("bearer "):])
}
