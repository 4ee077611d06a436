package memory

import (
	"context"
	"errors"
	"testing"

	"fauna-field-log/internal/ports/storage"
)

func TestKV_GetMissingKey(t *testing.T) {
	kv := NewKV()
	if _, err := kv.Get(context.Background(), "capturas"); !errors.Is(err, storage.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestKV_PutCopiesValue(t *testing.T) {
	ctx := context.Background()
	kv := NewKV()

	v := []byte(`[]`)
	if err := kv.Put(ctx, "capturas", v); err != nil {
		t.Fatalf("put: %v", err)
	}
	v[0] = 'x'

	got, err := kv.Get(ctx, "capturas")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "[]" {
		t.Fatalf("stored value aliased caller slice: %q", got)
	}
}
