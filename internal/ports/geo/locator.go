package geo

import (
	"context"
	"errors"
)

// ErrUnavailable: no hay forma de obtener posición (sin proveedor, permiso denegado, etc).
var ErrUnavailable = errors.New("geo: position unavailable")

// Position es una lectura puntual de coordenadas.
type Position struct {
	Latitude  float64
	Longitude float64
}

// Locator obtiene la posición actual. Una llamada = una solicitud.
type Locator interface {
	CurrentPosition(ctx context.Context) (Position, error)
}
