package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

// actorKey is the context key under which the authenticated user ID is stored.
const actorKey contextKey = "actor"

// Authenticator verifies the Bearer token on every request and stores the
// authenticated user ID in the request context. Requests without a valid
// token are rejected with 401.
func Authenticator(secret []byte) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				http.Error(w, "Missing bearer token", http.StatusUnauthorized)
				return
			}

			userID, err := parseSubject(tokenString, secret)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), actorKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}

// parseSubject validates the token signature and returns its subject claim.
func parseSubject(tokenString string, secret []byte) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("failed to read subject claim: %w", err)
	}
	if subject == "" {
		return "", fmt.Errorf("token has no subject claim")
	}

	return subject, nil
}

// ActorFromContext returns the authenticated user ID, or an empty string when
// the request did not pass through the Authenticator.
func ActorFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(actorKey).(string)
	return userID
}

// WithActor returns a context carrying the given user ID. It exists for tests
// and internal callers that bypass the HTTP middleware.
func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorKey, userID)
}
