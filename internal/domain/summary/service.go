package summary

import (
	"context"
	"time"

	"fauna-field-log/internal/domain/captures"
)

// CaptureLister da acceso de solo lectura a la colección.
type CaptureLister interface {
	List(ctx context.Context) captures.Collection
}

type Service struct {
	captures CaptureLister
	loc      *time.Location
	now      func() time.Time
}

func NewService(captures CaptureLister, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{captures: captures, loc: loc, now: time.Now}
}

func (s *Service) Get(ctx context.Context) Summary {
	return Compute(s.captures.List(ctx), s.now().In(s.loc))
}
