package auth

import (
	"context"
	"net/http"
	"strings"

	"traffic-lab/errors"
)

type contextKey string

const claimsKey contextKey = "claims"

// ErrorWriter renders an error on the HTTP boundary.
type ErrorWriter func(w http.ResponseWriter, err error)

// Middleware validates the bearer token and injects the claims into the request context.
// Websocket clients cannot set headers from a browser, so a "token" query parameter is accepted too.
func Middleware(tokens *TokenManager, writeError ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := TokenFromRequest(r)
			if tokenStr == "" {
				writeError(w, errors.ErrUnauthorized)
				return
			}
			claims, err := tokens.ValidateToken(tokenStr)
			if err != nil {
				writeError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// TokenFromRequest expects the standard "Bearer <token>" header, falling back to the query string.
func TokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return r.URL.Query().Get("token")
}

func WithClaims(ctx context.Context, claims *CustomClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func ClaimsFrom(ctx context.Context) (*CustomClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*CustomClaims)
	return claims, ok
}

// UserIDFrom returns the authenticated identity, empty when the request is anonymous.
func UserIDFrom(ctx context.Context) string {
	if claims, ok := ClaimsFrom(ctx); ok {
		return claims.UserID
	}
	return ""
}
