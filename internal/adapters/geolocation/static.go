// Package geolocation implementa geo.Locator: posición fija, sin proveedor,
// o aproximada por IP contra un servicio tipo ip-api.
package geolocation

import (
	"context"

	"fauna-field-log/internal/ports/geo"
)

// Static devuelve siempre la misma posición. Útil en una estación fija o en dev.
type Static struct {
	Position geo.Position
}

func (s Static) CurrentPosition(ctx context.Context) (geo.Position, error) {
	if err := ctx.Err(); err != nil {
		return geo.Position{}, err
	}
	return s.Position, nil
}

// Unavailable simula un dispositivo sin GPS o con el permiso denegado.
type Unavailable struct{}

func (Unavailable) CurrentPosition(context.Context) (geo.Position, error) {
	return geo.Position{}, geo.ErrUnavailable
}
