package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/convivio/internal/storage"
)

const (
	UsersFile       = "users.json"
	CommunitiesFile = "communities.json"
)

// FileStore keeps the snapshot as two JSON documents under Root, one for
// identities and one for communities. Writes go through a temporary file and
// a rename, so a failed save never clobbers the previous snapshot.
type FileStore struct {
	Root string
}

func New(root string) (s storage.Storage, err error) {
	s = &FileStore{
		Root: root,
	}

	info, err := os.Stat(root)
	if err == nil {
		if !info.IsDir() {
			log.Error().Str("root", root).Msg("not a directory")
			err = storage.ErrInternal
		}
		return
	}

	if errors.Is(err, os.ErrNotExist) {
		err = os.MkdirAll(root, os.ModePerm)
	}

	if err != nil {
		log.Error().Err(err).Msg("internal error when setting up the snapshot directory")
		err = storage.ErrInternal
	}

	return
}

// Load reads both documents. A snapshot only exists when both are present;
// anything else is reported as ErrNotExist.
func (s *FileStore) Load(ctx context.Context) (storage.Snapshot, error) {
	var snap storage.Snapshot

	if err := s.readDoc(UsersFile, &snap.Users); err != nil {
		return storage.Snapshot{}, err
	}
	if err := s.readDoc(CommunitiesFile, &snap.Communities); err != nil {
		return storage.Snapshot{}, err
	}
	return snap, nil
}

func (s *FileStore) readDoc(name string, v any) error {
	path := filepath.Join(s.Root, name)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return storage.ErrNotExist
		}
		log.Error().Err(err).Str("path", path).Msg("failed to read snapshot file")
		return storage.ErrInternal
	}

	if err = json.Unmarshal(content, v); err != nil {
		log.Error().Err(err).Str("path", path).Msg("snapshot file is not valid JSON")
		return storage.ErrInternal
	}
	return nil
}

func (s *FileStore) Save(ctx context.Context, snap storage.Snapshot) error {
	if err := s.writeDoc(UsersFile, snap.Users); err != nil {
		return err
	}
	return s.writeDoc(CommunitiesFile, snap.Communities)
}

func (s *FileStore) writeDoc(name string, v any) error {
	content, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to serialize snapshot")
		return storage.ErrInternal
	}

	path := filepath.Join(s.Root, name)
	if err = atomic.WriteFile(path, bytes.NewReader(content)); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to write snapshot file")
		return storage.ErrInternal
	}
	return nil
}

func (s *FileStore) Reset(ctx context.Context) error {
	for _, name := range []string{UsersFile, CommunitiesFile} {
		err := os.Remove(filepath.Join(s.Root, name))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Error().Err(err).Str("file", name).Msg("failed to remove snapshot file")
			return storage.ErrInternal
		}
	}
	return nil
}
