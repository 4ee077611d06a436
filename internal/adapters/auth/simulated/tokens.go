// Package simulated implementa auth.TokenIssuer y auth.AuthVerifier sin
// proveedor de identidad: los tokens son opacos y viven en memoria.
package simulated

import (
	"context"
	"errors"
	"strings"
	"sync"

	"fauna-field-log/internal/platform/idgen"
	"fauna-field-log/internal/ports/auth"
)

var ErrTokenEmpty = errors.New("token is empty")

// Tokens recuerda los claims de cada token emitido. Un token desconocido
// igual se acepta: se usa el token como UserID.
type Tokens struct {
	mu       sync.RWMutex
	sessions map[string]auth.Claims

	newToken func() (string, error)
}

func NewTokens() *Tokens {
	return &Tokens{
		sessions: make(map[string]auth.Claims),
		newToken: func() (string, error) {
			return idgen.Generate(idgen.SessionPrefix)
		},
	}
}

func (t *Tokens) Issue(ctx context.Context, claims auth.Claims) (string, error) {
	token, err := t.newToken()
	if err != nil {
		return "", err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.sessions[token] = claims
	return token, nil
}

func (t *Tokens) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	if c, ok := t.sessions[token]; ok {
		return c, nil
	}
	return auth.Claims{UserID: token}, nil
}
