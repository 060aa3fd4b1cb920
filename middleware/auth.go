package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shouvik177/HRMS-Backend/models"
	"github.com/shouvik177/HRMS-Backend/stores"
)

type contextKey string

const UserContextKey contextKey = "user"

// TokenAuth authenticates requests carrying "Authorization: Token <key>"
// and loads the token's owner into the request context. The key is an
// opaque database token, so revocation takes effect on the next request.
func TokenAuth(tokens stores.TokenStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "Authentication credentials were not provided.")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Token" || parts[1] == "" {
				unauthorized(w, "Invalid token header.")
				return
			}

			user, err := tokens.FindUser(parts[1])
			if err != nil {
				unauthorized(w, "Invalid token.")
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

func GetUserFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}
