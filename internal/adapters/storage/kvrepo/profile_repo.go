package kvrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fauna-field-log/internal/domain/profile"
	"fauna-field-log/internal/platform/logger"
	"fauna-field-log/internal/ports/storage"
)

type storedProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProfileRepo struct {
	kv  storage.KV
	log logger.Logger
}

func NewProfileRepo(kv storage.KV, log logger.Logger) *ProfileRepo {
	if log == nil {
		log = logger.Nop()
	}
	return &ProfileRepo{
		kv:  kv,
		log: log.With(map[string]any{"component": "profile_repo", "key": profile.StorageKey}),
	}
}

// Load devuelve profile.ErrNotFound si no hay nada guardado o lo guardado no se puede leer.
func (r *ProfileRepo) Load(ctx context.Context) (profile.Profile, error) {
	raw, err := r.kv.Get(ctx, profile.StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			r.log.Warn("read failed, using default profile", map[string]any{"error": err})
		}
		return profile.Profile{}, profile.ErrNotFound
	}

	var sp storedProfile
	if err := json.Unmarshal(raw, &sp); err != nil {
		r.log.Warn("stored profile is malformed, using default profile", map[string]any{"error": err})
		return profile.Profile{}, profile.ErrNotFound
	}
	return profile.Profile{Name: sp.Name, Email: sp.Email}, nil
}

func (r *ProfileRepo) Save(ctx context.Context, p profile.Profile) error {
	raw, err := json.Marshal(storedProfile{Name: p.Name, Email: p.Email})
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return r.kv.Put(ctx, profile.StorageKey, raw)
}
