package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/overpowerdb/deckvault/deckvault/database/models"
	"github.com/overpowerdb/deckvault/deckvault/database/repositories"
)

type contextKey string

const userContextKey contextKey = "deckvault.user"

// Authenticate resolves the bearer token to a user and stores it on the
// request context. The engine itself never re-checks identity; this is the
// external caller the persistence layer trusts.
func Authenticate(users repositories.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			user, err := users.GetByToken(r.Context(), token)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom returns the authenticated user stored by Authenticate.
func UserFrom(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userContextKey).(*models.User)
	return u, ok
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return r.Header.Get("X-API-Token")
}
