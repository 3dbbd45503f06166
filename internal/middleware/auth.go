package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/daniele-farriciello/official-muay-thai-project/internal/auth"
)

// CookieName is the HTTP-only session cookie carrying the signed token.
const CookieName = "muayThaiAuth"

type contextKey string

const claimsKey contextKey = "sessionClaims"

// SessionAuth verifies the session cookie and stores the token claims in
// the request context. Missing and invalid tokens both short-circuit with
// 401 before the handler runs.
func SessionAuth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				writeAuthError(w, auth.ErrMissingToken.Error())
				return
			}

			claims, err := tokens.Verify(cookie.Value)
			if err != nil {
				writeAuthError(w, auth.ErrInvalidToken.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// WithClaims returns a context carrying the session claims.
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaims returns the session claims set by SessionAuth, or nil.
func GetClaims(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
