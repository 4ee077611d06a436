// Package mapview arma los marcadores del mapa de eventos.
package mapview

import (
	"context"
	"strings"

	"fauna-field-log/internal/domain/captures"
)

const DefaultColor = "#757575"

var kindColors = map[captures.Kind]string{
	captures.KindSighting: "#388e3c",
	captures.KindTrack:    "#f57c00",
	captures.KindAttack:   "#d32f2f",
}

// Color devuelve el color de marcador para un tipo de evento.
func Color(k captures.Kind) string {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return DefaultColor
}

// Label es el tipo capitalizado ("Avistamiento").
func Label(k captures.Kind) string {
	s := string(k)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

type Marker struct {
	ID        string
	Date      string
	Species   string
	Kind      captures.Kind
	Label     string
	Color     string
	Latitude  float64
	Longitude float64
	Located   bool
}

// Markers convierte la colección en marcadores, en el mismo orden.
// Los registros en 0,0 solo se incluyen con includeUnlocated.
func Markers(coll captures.Collection, includeUnlocated bool) []Marker {
	out := make([]Marker, 0, len(coll))
	for _, c := range coll {
		located := c.Located()
		if !located && !includeUnlocated {
			continue
		}
		out = append(out, Marker{
			ID:        c.ID,
			Date:      c.Date,
			Species:   captures.NormalizeSpecies(c.Species),
			Kind:      c.Kind,
			Label:     Label(c.Kind),
			Color:     Color(c.Kind),
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
			Located:   located,
		})
	}
	return out
}

type CaptureLister interface {
	List(ctx context.Context) captures.Collection
}

type Service struct {
	captures CaptureLister
}

func NewService(captures CaptureLister) *Service {
	return &Service{captures: captures}
}

func (s *Service) Markers(ctx context.Context, includeUnlocated bool) []Marker {
	return Markers(s.captures.List(ctx), includeUnlocated)
}
