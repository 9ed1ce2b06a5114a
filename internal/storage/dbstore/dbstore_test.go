package dbstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/golang-migrate/migrate"
	"github.com/golang-migrate/migrate/database/sqlite3"
	_ "github.com/golang-migrate/migrate/source/file"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sidereusnuntius/convivio/internal/domain"
	"github.com/sidereusnuntius/convivio/internal/storage"
)

var store storage.Storage

func TestMain(m *testing.M) {
	d, err := sql.Open("sqlite3", "file:temp?mode=memory")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open connection: %s", err)
		return
	}

	driver, err := sqlite3.WithInstance(d, &sqlite3.Config{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create driver: %s", err)
		return
	}

	mig, err := migrate.NewWithDatabaseInstance(
		"file://../../../migrations",
		"temp",
		driver,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create database object: %s", err)
		return
	}

	err = mig.Up()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %s", err)
		return
	}

	store = New(d)
	m.Run()

	d.Close()
	err, err2 := mig.Close()
	if err != nil || err2 != nil {
		fmt.Fprintf(os.Stderr, "Source: %s\nDatabase: %s\n", err, err2)
		return
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

func TestSaveReplacesPreviousSnapshot(t *testing.T) {
	ctx := context.Background()
	if err := store.Save(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	smaller := storage.Snapshot{Users: []*domain.User{domain.NewUser("clara", "789", "Clara")}}
	if err := store.Save(ctx, smaller); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(got.Users) != 1 || got.Users[0].Login != "clara" {
		t.Errorf("expected only clara, got %v", got.Users)
	}
	if len(got.Communities) != 0 {
		t.Errorf("expected no communities, got %v", got.Communities)
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
}
