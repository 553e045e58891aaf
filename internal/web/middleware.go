package web

import (
	"context"
	"net/http"
	"strings"

	"github.com/mrmoe28/solarscheduler/internal/domain"
)

type contextKey string

const userContextKey contextKey = "user"

// requireAuth validates the Bearer token on the request, confirms the session
// is still live, and injects the signed-in user into the request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			s.writeError(w, http.StatusUnauthorized, "missing or malformed authorization header")
			return
		}

		user, err := s.account.Authenticate(r.Context(), token)
		if err != nil {
			s.writeServiceError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header.
func bearerToken(r *http.Request) (string, bool) {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := header[len(prefix):]
	return token, token != ""
}

// userFrom returns the signed-in user placed on the context by requireAuth.
func userFrom(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	return user, ok
}
