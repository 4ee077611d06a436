package middleware

import (
	"context"
	"net/http"
	"strings"

	"fauna-field-log/internal/ports/auth"
)

type sessionKey struct{}

// ObserverHeader permite fijar el usuario a mano cuando no hay emisor de tokens.
const ObserverHeader = "X-Observer-ID"

// SessionContext resuelve la sesión simulada del request, si hay una.
// Ninguna ruta exige sesión: un token inválido o ausente deja pasar el request
// sin claims, y los claims solo alimentan el log de requests.
func SessionContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, ok := resolveSession(r, verifier); ok {
				r = r.WithContext(context.WithValue(r.Context(), sessionKey{}, claims))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClaimsFrom devuelve los claims que dejó SessionContext.
func ClaimsFrom(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(sessionKey{}).(auth.Claims)
	return c, ok
}

func resolveSession(r *http.Request, verifier auth.AuthVerifier) (auth.Claims, bool) {
	if verifier == nil {
		uid := strings.TrimSpace(r.Header.Get(ObserverHeader))
		return auth.Claims{UserID: uid}, uid != ""
	}

	scheme, token, found := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return auth.Claims{}, false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, false
	}

	claims, err := verifier.Verify(r.Context(), token)
	if err != nil {
		return auth.Claims{}, false
	}
	return claims, true
}
