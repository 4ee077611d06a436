package details

import (
	"errors"
	"strings"
)

var ErrInvalidAttack = errors.New("invalid attack details")

// Outcome es el estado del animal atacado.
// @Enum muerto, herido
type Outcome string

const (
	OutcomeDead    Outcome = "muerto"
	OutcomeInjured Outcome = "herido"
)

// Attack detalla un evento de tipo ataque. Solo existe cuando el kind es ataque.
type Attack struct {
	AnimalType         string // "bovino", "ovino", "perro", ...
	Outcome            Outcome
	PreventiveMeasures string
}

// Normalize recorta espacios. Devuelve error si el outcome no es reconocido.
func (a Attack) Normalize() (Attack, error) {
	a.AnimalType = strings.TrimSpace(a.AnimalType)
	a.PreventiveMeasures = strings.TrimSpace(a.PreventiveMeasures)
	a.Outcome = Outcome(strings.ToLower(strings.TrimSpace(string(a.Outcome))))

	switch a.Outcome {
	case OutcomeDead, OutcomeInjured:
	default:
		return Attack{}, ErrInvalidAttack
	}
	return a, nil
}
