package summary

import (
	"time"

	"fauna-field-log/internal/domain/captures"
)

const (
	RecentWindowDays = 7
	AttackWindowDays = 30
	TopSpeciesLimit  = 5
	MonthsShown      = 3
)

// Summary es la vista del dashboard. Se recalcula entera en cada consulta.
type Summary struct {
	Total  int
	ByKind []KindCount // en el orden de captures.Kinds

	Recent      []RecentEvent // últimos RecentWindowDays días, en el orden de la colección
	RecentCount int

	RecentAttacks int
	AttackAlert   bool

	TopSpecies []SpeciesCount
	Monthly    []MonthCount
}

type KindCount struct {
	Kind    captures.Kind
	Count   int
	Percent int
}

type SpeciesCount struct {
	Species string
	Count   int
	Percent int
}

type MonthCount struct {
	Label string // "ene 2024"
	Year  int
	Month time.Month
	Count int
}

// RecentEvent es un registro reciente sin las fotos.
type RecentEvent struct {
	ID      string
	Date    string
	Time    string
	Kind    captures.Kind
	Species string
	Place   string
}
