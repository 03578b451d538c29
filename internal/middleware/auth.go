package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/boramrl-25/limon-backend/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// ClaimsKey is the context key for the authenticated admin's claims.
const ClaimsKey contextKey = "claims"

// GetClaims extracts the verified claims from the context. Returns nil if
// the request did not pass RequireAuth.
func GetClaims(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(ClaimsKey).(*auth.Claims)
	return claims
}

// RequireAuth rejects requests without a valid bearer token and adds the
// verified claims to the request context for the wrapped handler.
func RequireAuth(jwtManager *auth.JWTManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Extract Authorization header
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			unauthorized(w, auth.ErrMissingToken)
			return
		}

		// Parse Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(w, auth.ErrTokenInvalid)
			return
		}

		// Validate token
		claims, err := jwtManager.Validate(parts[1])
		if err != nil {
			unauthorized(w, err)
			return
		}

		// Call the next handler with enriched context
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// unauthorized writes the 401 body, phrasing the detail by failure kind.
func unauthorized(w http.ResponseWriter, err error) {
	detail := "Invalid token"
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		detail = "Not authenticated"
	case errors.Is(err, auth.ErrTokenExpired):
		detail = "Token expired"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
