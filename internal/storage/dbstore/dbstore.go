package dbstore

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/convivio/internal/domain"
	"github.com/sidereusnuntius/convivio/internal/storage"
)

// DbStore keeps the snapshot in SQLite, one JSON document per identity and
// per community. The relational layer is only a keyed document table; the
// system never queries inside the documents.
type DbStore struct {
	db *sql.DB
}

func New(d *sql.DB) storage.Storage {
	return &DbStore{db: d}
}

// handleError maps driver errors to storage sentinels so callers never see
// implementation details.
func (s *DbStore) handleError(err error) error {
	if err == nil {
		return nil
	}
	log.Error().Err(err).Msg("database error")
	return storage.ErrInternal
}

func (s *DbStore) withTx(ctx context.Context, f func(tx *sql.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.handleError(err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = s.handleError(tx.Commit())
		}
	}()

	if err = f(tx); err != nil {
		err = s.handleError(err)
	}
	return
}

func (s *DbStore) Load(ctx context.Context) (storage.Snapshot, error) {
	var snap storage.Snapshot

	err := s.loadDocs(ctx, "SELECT doc FROM users ORDER BY rowid", func(doc []byte) error {
		var u domain.User
		if err := json.Unmarshal(doc, &u); err != nil {
			return err
		}
		snap.Users = append(snap.Users, &u)
		return nil
	})
	if err != nil {
		return storage.Snapshot{}, err
	}

	err = s.loadDocs(ctx, "SELECT doc FROM communities ORDER BY rowid", func(doc []byte) error {
		var c domain.Community
		if err := json.Unmarshal(doc, &c); err != nil {
			return err
		}
		snap.Communities = append(snap.Communities, &c)
		return nil
	})
	if err != nil {
		return storage.Snapshot{}, err
	}

	if len(snap.Users) == 0 && len(snap.Communities) == 0 {
		return storage.Snapshot{}, storage.ErrNotExist
	}
	return snap, nil
}

func (s *DbStore) loadDocs(ctx context.Context, query string, each func(doc []byte) error) error {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return s.handleError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var doc []byte
		if err = rows.Scan(&doc); err != nil {
			return s.handleError(err)
		}
		if err = each(doc); err != nil {
			return s.handleError(err)
		}
	}
	return s.handleError(rows.Err())
}

// Save rewrites both tables inside one transaction, so a failed save leaves
// the previous snapshot in place.
func (s *DbStore) Save(ctx context.Context, snap storage.Snapshot) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM users"); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM communities"); err != nil {
			return err
		}

		for _, u := range snap.Users {
			doc, err := json.Marshal(u)
			if err != nil {
				return err
			}
			if _, err = tx.ExecContext(ctx, "INSERT INTO users(login, doc) VALUES (?, ?)", u.Login, doc); err != nil {
				return err
			}
		}
		for _, c := range snap.Communities {
			doc, err := json.Marshal(c)
			if err != nil {
				return err
			}
			if _, err = tx.ExecContext(ctx, "INSERT INTO communities(name, doc) VALUES (?, ?)", c.Name, doc); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *DbStore) Reset(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM users"); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, "DELETE FROM communities")
		return err
	})
}
