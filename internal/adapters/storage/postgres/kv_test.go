package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"fauna-field-log/internal/ports/storage"
)

// newMockDB crea un sqlmock con cleanup y verificación de expectativas.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled expectations: %v", err)
		}
		db.Close()
	})
	return db, mock
}

func TestKV_Get(t *testing.T) {
	db, mock := newMockDB(t)
	kv := NewKV(db)

	mock.ExpectQuery("SELECT value FROM kv_store WHERE key = \\$1").
		WithArgs("capturas").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[]`)))

	got, err := kv.Get(context.Background(), "capturas")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "[]" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestKV_GetMissingKey(t *testing.T) {
	db, mock := newMockDB(t)
	kv := NewKV(db)

	mock.ExpectQuery("SELECT value FROM kv_store WHERE key = \\$1").
		WithArgs("userData").
		WillReturnError(sql.ErrNoRows)

	if _, err := kv.Get(context.Background(), "userData"); !errors.Is(err, storage.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestKV_GetWrapsDriverError(t *testing.T) {
	db, mock := newMockDB(t)
	kv := NewKV(db)

	boom := errors.New("connection reset")
	mock.ExpectQuery("SELECT value FROM kv_store").
		WithArgs("capturas").
		WillReturnError(boom)

	_, err := kv.Get(context.Background(), "capturas")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped driver error, got %v", err)
	}
	if errors.Is(err, storage.ErrKeyNotFound) {
		t.Fatal("driver error must not look like a missing key")
	}
}

func TestKV_PutUpserts(t *testing.T) {
	db, mock := newMockDB(t)
	kv := NewKV(db)

	mock.ExpectExec("INSERT INTO kv_store .* ON CONFLICT \\(key\\) DO UPDATE").
		WithArgs("capturas", []byte(`[{"id":"1"}]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := kv.Put(context.Background(), "capturas", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
}

func TestKV_EnsureSchema(t *testing.T) {
	db, mock := newMockDB(t)
	kv := NewKV(db)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS kv_store").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := kv.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
}
