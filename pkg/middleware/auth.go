package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ecomistry/backoffice-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeySession contextKey = "session"
)

// Rotas públicas, fora da verificação de sessão
var publicPaths = map[string]struct{}{
	"/v1/login":    {},
	"/healthcheck": {},
}

// AuthMiddleware verifica a presença de uma sessão válida. O núcleo só
// depende de presença/ausência: sem sessão, a requisição é recusada com 401.
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, public := publicPaths[r.URL.Path]; public {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
