package storage

import (
	"context"
	"errors"

	"github.com/sidereusnuntius/convivio/internal/domain"
)

var (
	ErrNotExist = errors.New("no snapshot exists")
	ErrInternal = errors.New("internal storage error")
)

// Snapshot is the full exportable state of the system: every identity and
// every community. Sessions are ephemeral and never part of a snapshot.
type Snapshot struct {
	Users       []*domain.User      `json:"users"`
	Communities []*domain.Community `json:"communities"`
}

// Storage persists snapshots between runs. The format is the
// implementation's concern; the system only hands over and receives back
// whole snapshots.
type Storage interface {
	// Load returns the previously saved snapshot, or ErrNotExist when
	// nothing has been saved yet.
	Load(ctx context.Context) (Snapshot, error)
	// Save replaces whatever was persisted before with snap.
	Save(ctx context.Context, snap Snapshot) error
	// Reset discards any persisted snapshot.
	Reset(ctx context.Context) error
}
