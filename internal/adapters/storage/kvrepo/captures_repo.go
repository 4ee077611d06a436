// Package kvrepo implementa los repositorios de dominio sobre un storage.KV:
// cada colección es un único blob JSON bajo una key fija.
package kvrepo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fauna-field-log/internal/domain/captures"
	"fauna-field-log/internal/domain/captures/details"
	"fauna-field-log/internal/platform/logger"
	"fauna-field-log/internal/ports/storage"
)

// storedCapture es el layout persistido bajo "capturas".
type storedCapture struct {
	ID           string        `json:"id"`
	Fecha        string        `json:"fecha"`
	Hora         string        `json:"hora"`
	Latitud      float64       `json:"latitud"`
	Longitud     float64       `json:"longitud"`
	Lugar        string        `json:"lugar"`
	Observador   string        `json:"observador"`
	Especie      string        `json:"especie"`
	TipoEvento   string        `json:"tipoEvento"`
	Descripcion  string        `json:"descripcion"`
	Fotos        []string      `json:"fotos"`
	DatosAtaque  *storedAttack `json:"datosAtaque,omitempty"`
	Sincronizado bool          `json:"sincronizado"`
}

type storedAttack struct {
	TipoAnimal         string `json:"tipoAnimal"`
	Estado             string `json:"estado"`
	MedidasPreventivas string `json:"medidasPreventivas"`
}

type CapturesRepo struct {
	kv  storage.KV
	log logger.Logger
}

func NewCapturesRepo(kv storage.KV, log logger.Logger) *CapturesRepo {
	if log == nil {
		log = logger.Nop()
	}
	return &CapturesRepo{
		kv:  kv,
		log: log.With(map[string]any{"component": "captures_repo", "key": captures.StorageKey}),
	}
}

// LoadAll degrada a colección vacía ante ausencia, error de lectura o blob corrupto.
func (r *CapturesRepo) LoadAll(ctx context.Context) captures.Collection {
	raw, err := r.kv.Get(ctx, captures.StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			r.log.Warn("read failed, using empty collection", map[string]any{"error": err})
		}
		return captures.Collection{}
	}

	coll, err := decodeCaptures(raw)
	if err != nil {
		r.log.Warn("stored collection is malformed, using empty collection", map[string]any{"error": err})
		return captures.Collection{}
	}
	return coll
}

func (r *CapturesRepo) SaveAll(ctx context.Context, c captures.Collection) error {
	raw, err := encodeCaptures(c)
	if err != nil {
		return err
	}
	return r.kv.Put(ctx, captures.StorageKey, raw)
}

func encodeCaptures(c captures.Collection) ([]byte, error) {
	out := make([]storedCapture, 0, len(c))
	for _, e := range c {
		photos := e.Photos
		if photos == nil {
			photos = []string{}
		}
		sc := storedCapture{
			ID:           e.ID,
			Fecha:        e.Date,
			Hora:         e.Time,
			Latitud:      e.Latitude,
			Longitud:     e.Longitude,
			Lugar:        e.Place,
			Observador:   e.Observer,
			Especie:      e.Species,
			TipoEvento:   string(e.Kind),
			Descripcion:  e.Description,
			Fotos:        photos,
			Sincronizado: e.Synchronized,
		}
		if e.Attack != nil {
			sc.DatosAtaque = &storedAttack{
				TipoAnimal:         e.Attack.AnimalType,
				Estado:             string(e.Attack.Outcome),
				MedidasPreventivas: e.Attack.PreventiveMeasures,
			}
		}
		out = append(out, sc)
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode captures: %w", err)
	}
	return raw, nil
}

// decodeCaptures exige la forma completa: array de objetos, kinds conocidos,
// IDs únicos, como mucho MaxPhotos fotos y datos de ataque válidos.
func decodeCaptures(raw []byte) (captures.Collection, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return captures.Collection{}, nil
	}

	var stored []storedCapture
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(stored))
	out := make(captures.Collection, 0, len(stored))
	for i, sc := range stored {
		if sc.ID == "" {
			return nil, fmt.Errorf("record %d: missing id", i)
		}
		if _, dup := seen[sc.ID]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %q", i, sc.ID)
		}
		seen[sc.ID] = struct{}{}

		kind := captures.Kind(sc.TipoEvento)
		if !kind.Valid() {
			return nil, fmt.Errorf("record %d: unknown event kind %q", i, sc.TipoEvento)
		}
		if len(sc.Fotos) > captures.MaxPhotos {
			return nil, fmt.Errorf("record %d: %d photos", i, len(sc.Fotos))
		}

		e := captures.Capture{
			ID:           sc.ID,
			Date:         sc.Fecha,
			Time:         sc.Hora,
			Latitude:     sc.Latitud,
			Longitude:    sc.Longitud,
			Place:        sc.Lugar,
			Observer:     sc.Observador,
			Species:      sc.Especie,
			Kind:         kind,
			Description:  sc.Descripcion,
			Photos:       sc.Fotos,
			Synchronized: sc.Sincronizado,
		}
		if e.Photos == nil {
			e.Photos = []string{}
		}
		if sc.DatosAtaque != nil && kind == captures.KindAttack {
			a, err := details.Attack{
				AnimalType:         sc.DatosAtaque.TipoAnimal,
				Outcome:            details.Outcome(sc.DatosAtaque.Estado),
				PreventiveMeasures: sc.DatosAtaque.MedidasPreventivas,
			}.Normalize()
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
			e.Attack = &a
		}
		out = append(out, e)
	}
	return out, nil
}
