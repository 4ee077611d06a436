package captures

import (
	"fmt"
	"strings"
)

// Kind clasifica el encuentro con fauna.
// @Enum avistamiento, rastro, ataque
type Kind string

const (
	KindSighting Kind = "avistamiento" // observación directa
	KindTrack    Kind = "rastro"       // huellas o indicios
	KindAttack   Kind = "ataque"       // ataque a ganado o animal doméstico
)

// Kinds en el orden en que los muestra el dashboard.
var Kinds = []Kind{KindSighting, KindTrack, KindAttack}

func (k Kind) Valid() bool {
	switch k {
	case KindSighting, KindTrack, KindAttack:
		return true
	default:
		return false
	}
}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: unknown event kind %q", ErrInvalidInput, s)
	}
	return k, nil
}

// Mode indica si un formulario crea o edita.
type Mode string

const (
	ModeNew  Mode = "new"
	ModeEdit Mode = "edit"
)

const (
	// StorageKey es la key del KV donde vive la colección completa.
	StorageKey = "capturas"

	MaxPhotos = 3

	DefaultSpecies  = "No especificada"
	DefaultObserver = "Usuario"

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)
