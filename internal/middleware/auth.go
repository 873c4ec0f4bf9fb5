package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const identityKey contextKey = "identity"

// TokenVerifier verifies an access token and returns the identity it carries.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Authenticate returns middleware that requires a valid Bearer token in the
// Authorization header. The reason a token failed verification is not exposed.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "authorization required")
				return
			}

			token, ok := bearerToken(authHeader)
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "token not found")
				return
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the email of the authenticated caller.
func IdentityFromContext(ctx context.Context) (string, bool) {
	identity, ok := ctx.Value(identityKey).(string)
	return identity, ok
}

// bearerToken extracts the token from a "Bearer <token>" header value. Scheme
// and token are separated by exactly one space.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
