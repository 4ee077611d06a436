package captures

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"fauna-field-log/internal/domain/captures/details"
	"fauna-field-log/internal/ports/geo"
)

// FormFields son cambios parciales sobre el formulario: nil = no tocar.
type FormFields struct {
	Place       *string
	Description *string
	Species     *string
	Observer    *string
	Kind        *Kind
	Attack      *details.Attack
	ClearAttack bool
}

// FormState es una copia de solo lectura del formulario para la UI.
type FormState struct {
	ID       string
	Mode     Mode
	TargetID string

	Date string
	Time string

	// nil mientras no haya posición ("Obteniendo...").
	Latitude  *float64
	Longitude *float64
	Locating  bool

	Place       string
	Observer    string
	Species     string
	Kind        Kind
	Description string
	Attack      *details.Attack

	Photos         []string
	CanAttachPhoto bool
}

// Form es el formulario de captura de un único registro.
//
// generation cambia en cada Reset/Close: una respuesta de posición que llega
// con una generación vieja se descarta. Mientras submitting está activo el
// formulario no acepta cambios.
type Form struct {
	mu sync.Mutex

	id     string
	mode   Mode
	origin *Capture // solo en edición

	date string
	time string

	lat *float64
	lon *float64

	generation uint64
	pending    int
	closed     bool
	submitting bool
	touched    time.Time

	place       string
	observer    string
	species     string
	kind        Kind
	description string
	attack      *details.Attack
	photos      []string
}

func newForm(id string, now time.Time, origin *Capture) *Form {
	f := &Form{id: id, mode: ModeNew, touched: now}
	if origin != nil {
		o := origin.clone()
		f.mode = ModeEdit
		f.origin = &o
	} else {
		// Solo informativo: al guardar se vuelve a sellar con la hora real.
		f.date = now.Format(DateLayout)
		f.time = now.Format(TimeLayout)
	}
	f.resetLocked()
	return f
}

func (f *Form) ID() string { return f.id }

func (f *Form) Mode() Mode { return f.mode }

func (f *Form) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()

	st := FormState{
		ID:             f.id,
		Mode:           f.mode,
		Date:           f.date,
		Time:           f.time,
		Locating:       f.pending > 0,
		Place:          f.place,
		Observer:       f.observer,
		Species:        f.species,
		Kind:           f.kind,
		Description:    f.description,
		Photos:         append([]string(nil), f.photos...),
		CanAttachPhoto: len(f.photos) < MaxPhotos,
	}
	if f.origin != nil {
		st.TargetID = f.origin.ID
	}
	if f.lat != nil && f.lon != nil {
		lat, lon := *f.lat, *f.lon
		st.Latitude, st.Longitude = &lat, &lon
	}
	if f.attack != nil {
		a := *f.attack
		st.Attack = &a
	}
	return st
}

func (f *Form) Apply(in FormFields) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.writableLocked() {
		return ErrFormClosed
	}

	if in.Kind != nil && !in.Kind.Valid() {
		return fmt.Errorf("%w: unknown event kind %q", ErrInvalidInput, *in.Kind)
	}
	var attack *details.Attack
	if in.Attack != nil {
		a, err := in.Attack.Normalize()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		attack = &a
	}

	if in.Place != nil {
		f.place = *in.Place
	}
	if in.Description != nil {
		f.description = *in.Description
	}
	if in.Species != nil {
		f.species = *in.Species
	}
	if in.Observer != nil {
		f.observer = *in.Observer
	}
	if in.Kind != nil {
		f.kind = *in.Kind
	}
	if in.ClearAttack {
		f.attack = nil
	}
	if attack != nil {
		f.attack = attack
	}
	return nil
}

// AttachPhoto agrega una imagen. Con MaxPhotos ya cargadas no cambia nada.
func (f *Form) AttachPhoto(content []byte) error {
	f.mu.Lock()
	closed, full := !f.writableLocked(), len(f.photos) >= MaxPhotos
	f.mu.Unlock()

	if closed {
		return ErrFormClosed
	}
	if full {
		return ErrPhotoLimit
	}

	// Encode fuera del lock: puede ser un archivo grande.
	dataURL, err := EncodePhoto(content)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.writableLocked() {
		return ErrFormClosed
	}
	if len(f.photos) >= MaxPhotos {
		return ErrPhotoLimit
	}
	f.photos = append(f.photos, dataURL)
	return nil
}

func (f *Form) RemovePhoto(index int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.writableLocked() {
		return ErrFormClosed
	}
	if index < 0 || index >= len(f.photos) {
		return fmt.Errorf("%w: photo index %d out of range", ErrInvalidInput, index)
	}

	out := make([]string, 0, len(f.photos)-1)
	out = append(out, f.photos[:index]...)
	f.photos = append(out, f.photos[index+1:]...)
	return nil
}

// ReportPosition aplica una posición que ya trae el dispositivo.
func (f *Form) ReportPosition(p geo.Position) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.writableLocked() {
		return ErrFormClosed
	}
	f.setPositionLocked(p)
	return nil
}

// Reset descarta lo escrito (edición: vuelve al registro original) y las
// solicitudes de posición en curso.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.generation++
	f.pending = 0
	f.resetLocked()
}

// Close invalida el formulario; cualquier operación posterior falla con ErrFormClosed.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.generation++
	f.pending = 0
	f.closed = true
	f.submitting = false
}

func (f *Form) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *Form) writableLocked() bool {
	return !f.closed && !f.submitting
}

// endSubmit vuelve a abrir el formulario a cambios tras un guardado fallido.
func (f *Form) endSubmit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
}

func (f *Form) touch(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched = now
}

func (f *Form) lastTouched() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.touched
}

func (f *Form) beginLocate() (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return 0, ErrFormClosed
	}
	f.pending++
	return f.generation, nil
}

// resolveLocate cierra una solicitud. p == nil significa que falló: las
// coordenadas quedan como estaban. Devuelve false si la respuesta era vieja.
func (f *Form) resolveLocate(gen uint64, p *geo.Position) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || gen != f.generation {
		return false
	}
	if f.pending > 0 {
		f.pending--
	}
	if p != nil {
		f.setPositionLocked(*p)
	}
	return true
}

func (f *Form) setPositionLocked(p geo.Position) {
	lat, lon := p.Latitude, p.Longitude
	f.lat, f.lon = &lat, &lon
}

func (f *Form) resetLocked() {
	f.attack = nil
	f.photos = nil

	if f.origin == nil {
		f.place = ""
		f.observer = ""
		f.species = ""
		f.kind = KindSighting
		f.description = ""
		return
	}

	o := f.origin.clone()
	f.date, f.time = o.Date, o.Time
	lat, lon := o.Latitude, o.Longitude
	f.lat, f.lon = &lat, &lon
	f.place = o.Place
	f.observer = o.Observer
	f.species = o.Species
	f.kind = o.Kind
	f.description = o.Description
	f.attack = o.Attack
	f.photos = o.Photos
}

// draft valida y arma el registro a guardar. ID, Synchronized y, en modo
// nuevo, fecha/hora los completa el Service. Si valida, el formulario queda
// en submitting hasta Close o endSubmit.
func (f *Form) draft() (Capture, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.writableLocked() {
		return Capture{}, ErrFormClosed
	}

	place := strings.TrimSpace(f.place)
	if place == "" {
		return Capture{}, fmt.Errorf("%w: place is required", ErrInvalidInput)
	}
	description := strings.TrimSpace(f.description)
	if description == "" {
		return Capture{}, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if len(f.photos) == 0 {
		return Capture{}, fmt.Errorf("%w: at least one photo is required", ErrInvalidInput)
	}
	if !f.kind.Valid() {
		return Capture{}, fmt.Errorf("%w: unknown event kind %q", ErrInvalidInput, f.kind)
	}

	observer := strings.TrimSpace(f.observer)
	if observer == "" {
		observer = DefaultObserver
	}

	c := Capture{
		Date:        f.date,
		Time:        f.time,
		Place:       place,
		Observer:    observer,
		Species:     NormalizeSpecies(f.species),
		Kind:        f.kind,
		Description: description,
		Photos:      append([]string(nil), f.photos...),
	}
	if f.lat != nil && f.lon != nil {
		c.Latitude, c.Longitude = *f.lat, *f.lon
	}
	if f.kind == KindAttack && f.attack != nil {
		a := *f.attack
		c.Attack = &a
	}
	f.submitting = true
	return c, nil
}
