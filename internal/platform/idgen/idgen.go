// Package idgen genera IDs cortos y URL-safe con nanoid.
// Los registros de captura usan uuid; esto es para sesiones efímeras (formularios, tokens).
package idgen

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

const (
	FormPrefix    = "frm-"
	SessionPrefix = "ses-"
)

// Alphabet sin caracteres ambiguos para que los IDs se puedan dictar por radio.
var Alphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var Length = 12

// Generate devuelve prefix + Length caracteres aleatorios.
func Generate(prefix string) (string, error) {
	id, err := nanoid.Generate(Alphabet, Length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return prefix + id, nil
}
