package captures

import (
	"strings"
	"time"

	"fauna-field-log/internal/domain/captures/details"
)

// Capture es un encuentro con fauna registrado en campo.
type Capture struct {
	ID string

	Date string // YYYY-MM-DD
	Time string // HH:MM, hora local

	// 0,0 cuando no se pudo obtener posición.
	Latitude  float64
	Longitude float64

	Place    string
	Observer string
	Species  string

	Kind        Kind
	Description string

	// Data URLs (data:image/...;base64,...), máximo MaxPhotos.
	Photos []string

	Attack *details.Attack

	// Nunca se modifica: reservado para una sincronización futura.
	Synchronized bool
}

// Day parsea Date como día calendario en loc.
func (c Capture) Day(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, c.Date, loc)
}

// Located es false para el centinela 0,0.
func (c Capture) Located() bool {
	return c.Latitude != 0 || c.Longitude != 0
}

func (c Capture) clone() Capture {
	out := c
	out.Photos = append([]string(nil), c.Photos...)
	if c.Attack != nil {
		a := *c.Attack
		out.Attack = &a
	}
	return out
}

// NormalizeSpecies colapsa espacios y aplica el centinela DefaultSpecies.
// Se usa al escribir y al agrupar para que ambos lados coincidan.
func NormalizeSpecies(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return DefaultSpecies
	}
	return s
}
