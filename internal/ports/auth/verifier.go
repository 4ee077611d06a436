package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite tokens para una sesión nueva (login/registro).
type TokenIssuer interface {
	Issue(ctx context.Context, claims Claims) (string, error)
}
