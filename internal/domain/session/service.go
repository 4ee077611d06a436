// Package session implementa el acceso simulado de la app: login, registro y
// recuperación de contraseña sin backend de identidad real.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fauna-field-log/internal/domain/profile"
	"fauna-field-log/internal/platform/logger"
	"fauna-field-log/internal/ports/auth"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// ProfileWriter guarda el perfil inicial al registrarse.
type ProfileWriter interface {
	Update(ctx context.Context, in profile.UpdateInput) (profile.View, error)
}

type Session struct {
	Token  string
	Claims auth.Claims
}

type Service struct {
	issuer   auth.TokenIssuer
	profiles ProfileWriter
	log      logger.Logger
}

func NewService(issuer auth.TokenIssuer, profiles ProfileWriter, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		issuer:   issuer,
		profiles: profiles,
		log:      log.With(map[string]any{"component": "session"}),
	}
}

type LoginInput struct {
	Email    string
	Password string
}

// Login acepta cualquier par email/contraseña no vacío.
func (s *Service) Login(ctx context.Context, in LoginInput) (Session, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return Session{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	return s.open(ctx, email)
}

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Register exige nombre, email y que las contraseñas coincidan. Deja el perfil guardado.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Session, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return Session{}, fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}
	if in.Password != in.ConfirmPassword {
		return Session{}, ErrPasswordMismatch
	}

	if s.profiles != nil {
		if _, err := s.profiles.Update(ctx, profile.UpdateInput{Name: name, Email: email}); err != nil {
			if errors.Is(err, profile.ErrInvalidInput) {
				return Session{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			return Session{}, err
		}
	}
	return s.open(ctx, email)
}

// ForgotPassword solo valida el email; no se envía nada.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	s.log.Info("password reset requested", nil)
	return nil
}

func (s *Service) open(ctx context.Context, email string) (Session, error) {
	claims := auth.Claims{UserID: strings.ToLower(email), Email: email}
	if s.issuer == nil {
		return Session{Claims: claims}, nil
	}
	token, err := s.issuer.Issue(ctx, claims)
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}
	s.log.Debug("session opened", map[string]any{"user_id": claims.UserID})
	return Session{Token: token, Claims: claims}, nil
}
