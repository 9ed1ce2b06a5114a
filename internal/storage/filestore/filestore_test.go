package filestore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/convivio/internal/domain"
	"github.com/sidereusnuntius/convivio/internal/storage"
)

var store storage.Storage
var path string

func TestMain(m *testing.M) {
	var err error
	path, err = os.MkdirTemp(".", "tempdir")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup tests")
		return
	}

	store = &FileStore{
		Root: path,
	}

	m.Run()
	if err = os.RemoveAll(path); err != nil {
		log.Fatal().Err(err).Msg("removal of temporary directory failed")
	}
}

func sampleSnapshot() storage.Snapshot {
	ana := domain.NewUser("ana", "123", "Ana")
	ana.Relations.Friends = []string{"bia"}
	ana.Receive(domain.NewNote("bia", "oi"))
	return storage.Snapshot{
		Users: []*domain.User{ana, domain.NewUser("bia", "456", "Bia")},
		Communities: []*domain.Community{
			{Name: "readers", Description: "we read", Manager: "ana", Members: []string{"ana", "bia"}},
		},
	}
}

func TestLoadWithoutSnapshot(t *testing.T) {
	if _, err := store.Load(context.Background()); !errors.Is(err, storage.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestSaveThenLoad(t *testing.T) {
	ctx := context.Background()
	expected := sampleSnapshot()

	if err := store.Save(ctx, expected); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff(expected, got, cmpopts.EquateEmpty()); diff != "" {
		t.Error(diff)
	}
}

func TestLoadRequiresBothFiles(t *testing.T) {
	ctx := context.Background()
	if err := store.Save(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := os.Remove(filepath.Join(path, CommunitiesFile)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if _, err := store.Load(ctx); !errors.Is(err, storage.ErrNotExist) {
		t.Errorf("expected ErrNotExist with a missing document, got %v", err)
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	if err := store.Save(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if err := store.Reset(ctx); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, storage.ErrNotExist) {
		t.Errorf("expected ErrNotExist after reset, got %v", err)
	}

	// Resetting an already empty store is fine.
	if err := store.Reset(ctx); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
}

func TestNewRejectsFileRoot(t *testing.T) {
	name := filepath.Join(path, "notadir")
	f, err := os.Create(name)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	f.Close()

	if _, err := New(name); !errors.Is(err, storage.ErrInternal) {
		t.Errorf("expected ErrInternal, got %v", err)
	}
}
