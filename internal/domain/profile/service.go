package profile

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"fauna-field-log/internal/domain/captures"
	"fauna-field-log/internal/platform/logger"
)

var ErrInvalidInput = errors.New("invalid input")

// CaptureLister da acceso a la colección para contar eventos.
type CaptureLister interface {
	List(ctx context.Context) captures.Collection
}

type Service struct {
	repo     Repository
	captures CaptureLister
	log      logger.Logger
}

func NewService(repo Repository, captures CaptureLister, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:     repo,
		captures: captures,
		log:      log.With(map[string]any{"component": "profile"}),
	}
}

// Get devuelve el perfil guardado (o el default) junto con la cantidad de eventos.
func (s *Service) Get(ctx context.Context) (View, error) {
	p, err := s.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return View{}, err
		}
		p = Default()
	}

	v := View{Profile: p}
	if s.captures != nil {
		v.EventCount = len(s.captures.List(ctx))
	}
	return v, nil
}

type UpdateInput struct {
	Name  string
	Email string
}

// Update reemplaza el perfil. Ambos campos son obligatorios.
func (s *Service) Update(ctx context.Context, in UpdateInput) (View, error) {
	p, err := normalize(in)
	if err != nil {
		return View{}, err
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return View{}, fmt.Errorf("save profile: %w", err)
	}
	s.log.Info("profile updated", nil)
	return s.Get(ctx)
}

func normalize(in UpdateInput) (Profile, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Profile{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return Profile{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return Profile{}, fmt.Errorf("%w: invalid email %q", ErrInvalidInput, email)
	}
	return Profile{Name: name, Email: email}, nil
}
