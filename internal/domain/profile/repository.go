package profile

import (
	"context"
	"errors"
)

// ErrNotFound lo devuelve Load cuando no hay perfil guardado (o no se puede leer).
var ErrNotFound = errors.New("profile not found")

type Repository interface {
	Load(ctx context.Context) (Profile, error)
	Save(ctx context.Context, p Profile) error
}
