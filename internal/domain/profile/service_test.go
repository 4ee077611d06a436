package profile

import (
	"context"
	"errors"
	"testing"

	"fauna-field-log/internal/domain/captures"
)

type testRepo struct {
	p     *Profile
	saves int
}

func (r *testRepo) Load(ctx context.Context) (Profile, error) {
	if r.p == nil {
		return Profile{}, ErrNotFound
	}
	return *r.p, nil
}

func (r *testRepo) Save(ctx context.Context, p Profile) error {
	r.saves++
	r.p = &p
	return nil
}

type stubLister captures.Collection

func (s stubLister) List(ctx context.Context) captures.Collection {
	return captures.Collection(s)
}

func TestService_Get_DefaultsWhenMissing(t *testing.T) {
	svc := NewService(&testRepo{}, stubLister{{ID: "a"}, {ID: "b"}}, nil)

	v, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v.Name != DefaultName || v.Email != DefaultEmail {
		t.Fatalf("expected default profile, got %+v", v.Profile)
	}
	if v.EventCount != 2 {
		t.Fatalf("expected 2 events, got %d", v.EventCount)
	}
}

func TestService_Update_RequiresBothFields(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo, nil, nil)

	cases := []UpdateInput{
		{Name: "", Email: "ana@ejemplo.com"},
		{Name: "Ana", Email: "  "},
		{Name: "Ana", Email: "no-es-un-email"},
	}
	for _, in := range cases {
		if _, err := svc.Update(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Update(%+v): expected ErrInvalidInput, got %v", in, err)
		}
	}
	if repo.saves != 0 {
		t.Fatalf("invalid updates must not be saved, saves=%d", repo.saves)
	}
}

func TestService_Update_SavesTrimmed(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo, nil, nil)

	v, err := svc.Update(context.Background(), UpdateInput{Name: " Ana Pérez ", Email: " ana@ejemplo.com "})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if v.Name != "Ana Pérez" || v.Email != "ana@ejemplo.com" {
		t.Fatalf("unexpected profile: %+v", v.Profile)
	}
	if repo.p == nil || repo.p.Name != "Ana Pérez" {
		t.Fatal("expected profile persisted")
	}
}
