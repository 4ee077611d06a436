package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound lo devuelve Get cuando la key nunca se escribió.
var ErrKeyNotFound = errors.New("storage: key not found")

// KV es el almacenamiento local clave-valor donde viven los blobs de la app
// ("capturas", "userData"). Cada Put reemplaza el valor completo.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
