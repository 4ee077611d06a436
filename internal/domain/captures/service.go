package captures

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"fauna-field-log/internal/platform/idgen"
	"fauna-field-log/internal/platform/logger"
	"fauna-field-log/internal/ports/geo"
)

// Metrics recibe los hechos del flujo de captura. Puede ser nil.
type Metrics interface {
	CaptureSaved(mode string)
	CaptureDeleted()
	PositionResolved(outcome string)
}

const (
	DefaultGeoTimeout      = 15 * time.Second
	DefaultFormIdleTimeout = 30 * time.Minute
	DefaultMaxOpenForms    = 64
)

type Options struct {
	Locator  geo.Locator // nil = sin geolocalización
	Logger   logger.Logger
	Metrics  Metrics
	Location *time.Location // zona para sellar fecha/hora; default time.Local

	// Tiempo máximo de una solicitud de posición. Default 15s.
	GeoTimeout time.Duration

	// Un formulario sin uso por más de FormIdleTimeout se descarta. Con
	// MaxOpenForms abiertos, abrir otro descarta el menos usado.
	FormIdleTimeout time.Duration
	MaxOpenForms    int
}

type Service struct {
	// mu serializa los read-modify-write sobre la colección.
	mu sync.Mutex

	repo    Repository
	locator geo.Locator
	log     logger.Logger
	metrics Metrics
	loc     *time.Location

	geoTimeout time.Duration
	locating   sync.WaitGroup

	formIdle time.Duration
	maxForms int

	now       func() time.Time
	newID     func() string
	newFormID func() (string, error)

	formsMu sync.Mutex
	forms   map[string]*Form
}

func NewService(repo Repository, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	timeout := opts.GeoTimeout
	if timeout <= 0 {
		timeout = DefaultGeoTimeout
	}
	idle := opts.FormIdleTimeout
	if idle <= 0 {
		idle = DefaultFormIdleTimeout
	}
	maxForms := opts.MaxOpenForms
	if maxForms <= 0 {
		maxForms = DefaultMaxOpenForms
	}

	return &Service{
		repo:       repo,
		locator:    opts.Locator,
		log:        log.With(map[string]any{"component": "captures"}),
		metrics:    opts.Metrics,
		loc:        loc,
		geoTimeout: timeout,
		formIdle:   idle,
		maxForms:   maxForms,
		now:        time.Now,
		newID:      uuid.NewString,
		newFormID: func() (string, error) {
			return idgen.Generate(idgen.FormPrefix)
		},
		forms: make(map[string]*Form),
	}
}

func (s *Service) List(ctx context.Context) Collection {
	return s.repo.LoadAll(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Capture, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Capture{}, ErrInvalidInput
	}
	c, ok := s.repo.LoadAll(ctx).Find(id)
	if !ok {
		return Capture{}, ErrNotFound
	}
	return c, nil
}

// OpenNew abre un formulario en modo nuevo y pide la posición actual.
func (s *Service) OpenNew(ctx context.Context) (*Form, error) {
	id, err := s.newFormID()
	if err != nil {
		return nil, err
	}

	f := newForm(id, s.now().In(s.loc), nil)
	s.register(f)

	if err := s.RefreshPosition(f); err != nil {
		return nil, err
	}
	return f, nil
}

// OpenEdit abre un formulario precargado con el registro id. No pide posición.
func (s *Service) OpenEdit(ctx context.Context, id string) (*Form, error) {
	target, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	formID, err := s.newFormID()
	if err != nil {
		return nil, err
	}

	f := newForm(formID, s.now().In(s.loc), &target)
	s.register(f)
	return f, nil
}

// Form busca un formulario abierto y lo marca como usado.
func (s *Service) Form(id string) (*Form, error) {
	s.formsMu.Lock()
	defer s.formsMu.Unlock()

	f, ok := s.forms[id]
	if !ok {
		return nil, ErrFormNotFound
	}
	now := s.now()
	if s.idleLocked(f, now) {
		s.evictLocked(f, "idle")
		return nil, ErrFormNotFound
	}
	f.touch(now)
	return f, nil
}

// EvictIdle descarta los formularios sin uso por más del tiempo configurado.
// Devuelve cuántos cerró.
func (s *Service) EvictIdle() int {
	s.formsMu.Lock()
	defer s.formsMu.Unlock()
	return s.evictIdleLocked(s.now())
}

// RunEvictor llama a EvictIdle cada interval hasta que ctx termina.
func (s *Service) RunEvictor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = s.formIdle / 2
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.EvictIdle()
		}
	}
}

// OpenForms es la cantidad de formularios registrados.
func (s *Service) OpenForms() int {
	s.formsMu.Lock()
	defer s.formsMu.Unlock()
	return len(s.forms)
}

// CloseForm cierra y olvida el formulario; respuestas de posición pendientes se descartan.
func (s *Service) CloseForm(id string) error {
	f, ok := s.unregister(id)
	if !ok {
		return ErrFormNotFound
	}
	f.Close()
	return nil
}

// RefreshPosition dispara una solicitud de posición en segundo plano.
// Un fallo no es fatal: se loguea y las coordenadas quedan como estaban.
func (s *Service) RefreshPosition(f *Form) error {
	gen, err := f.beginLocate()
	if err != nil {
		return err
	}

	log := s.log.With(map[string]any{"form_id": f.ID()})

	s.locating.Add(1)
	go func() {
		defer s.locating.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.geoTimeout)
		defer cancel()

		var (
			pos geo.Position
			err = geo.ErrUnavailable
		)
		if s.locator != nil {
			pos, err = s.locator.CurrentPosition(ctx)
		}

		if err != nil {
			log.Warn("position unavailable", map[string]any{"error": err})
			if f.resolveLocate(gen, nil) {
				s.positionResolved("error")
			} else {
				s.positionResolved("stale")
			}
			return
		}

		if !f.resolveLocate(gen, &pos) {
			log.Debug("stale position dropped", nil)
			s.positionResolved("stale")
			return
		}
		s.positionResolved("ok")
	}()
	return nil
}

// WaitLocating espera a que terminen las solicitudes de posición en curso.
func (s *Service) WaitLocating() {
	s.locating.Wait()
}

// Submit valida el formulario y lo guarda en la colección.
//
// Modo nuevo: ID nuevo, Synchronized=false, fecha/hora del momento del guardado,
// se agrega al final. Modo edición: se conservan ID, Synchronized, fecha y hora
// del registro original y se reemplaza en su misma posición.
// Si todo sale bien el formulario queda reseteado y cerrado.
func (s *Service) Submit(ctx context.Context, f *Form) (Capture, error) {
	c, err := f.draft()
	if err != nil {
		return Capture{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	saved := false
	defer func() {
		if !saved {
			f.endSubmit()
		}
	}()

	// Cerrado mientras esperaba el lock (descartado por inactividad).
	if f.Closed() {
		return Capture{}, ErrFormClosed
	}

	coll := s.repo.LoadAll(ctx)

	switch f.Mode() {
	case ModeEdit:
		orig, ok := coll.Find(f.origin.ID)
		if !ok {
			return Capture{}, ErrNotFound
		}
		c.ID = orig.ID
		c.Synchronized = orig.Synchronized
		c.Date, c.Time = orig.Date, orig.Time
		coll, _ = coll.Replace(c)
	default:
		now := s.now().In(s.loc)
		c.ID = s.newID()
		c.Synchronized = false
		c.Date = now.Format(DateLayout)
		c.Time = now.Format(TimeLayout)
		coll = coll.Append(c)
	}

	if err := s.repo.SaveAll(ctx, coll); err != nil {
		return Capture{}, fmt.Errorf("save captures: %w", err)
	}

	saved = true
	s.unregister(f.ID())
	f.Reset()
	f.Close()

	s.log.Info("capture saved", map[string]any{
		"id":   c.ID,
		"mode": string(f.Mode()),
		"kind": string(c.Kind),
	})
	if s.metrics != nil {
		s.metrics.CaptureSaved(string(f.Mode()))
	}
	return c.clone(), nil
}

// Delete borra el registro id. Sin confirmación explícita no hace nada.
func (s *Service) Delete(ctx context.Context, id string, confirmed bool) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	if !confirmed {
		return ErrConfirmationRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.repo.LoadAll(ctx).Remove(id)
	if !ok {
		return ErrNotFound
	}
	if err := s.repo.SaveAll(ctx, coll); err != nil {
		return fmt.Errorf("save captures: %w", err)
	}

	s.log.Info("capture deleted", map[string]any{"id": id})
	if s.metrics != nil {
		s.metrics.CaptureDeleted()
	}
	return nil
}

func (s *Service) register(f *Form) {
	s.formsMu.Lock()
	defer s.formsMu.Unlock()

	s.evictIdleLocked(s.now())
	for len(s.forms) >= s.maxForms {
		s.evictLocked(s.oldestLocked(), "limit")
	}
	s.forms[f.ID()] = f
}

func (s *Service) idleLocked(f *Form, now time.Time) bool {
	return now.Sub(f.lastTouched()) > s.formIdle
}

func (s *Service) evictIdleLocked(now time.Time) int {
	n := 0
	for _, f := range s.forms {
		if s.idleLocked(f, now) {
			s.evictLocked(f, "idle")
			n++
		}
	}
	return n
}

func (s *Service) oldestLocked() *Form {
	var oldest *Form
	var at time.Time
	for _, f := range s.forms {
		if t := f.lastTouched(); oldest == nil || t.Before(at) {
			oldest, at = f, t
		}
	}
	return oldest
}

// evictLocked cierra el formulario: una posición que llegue tarde se descarta.
func (s *Service) evictLocked(f *Form, reason string) {
	delete(s.forms, f.ID())
	f.Close()
	s.log.Info("form evicted", map[string]any{"form_id": f.ID(), "reason": reason})
}

func (s *Service) unregister(id string) (*Form, bool) {
	s.formsMu.Lock()
	defer s.formsMu.Unlock()

	f, ok := s.forms[id]
	delete(s.forms, id)
	return f, ok
}

func (s *Service) positionResolved(outcome string) {
	if s.metrics != nil {
		s.metrics.PositionResolved(outcome)
	}
}
