package core

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/convivio/internal/config"
	"github.com/sidereusnuntius/convivio/internal/domain"
	"github.com/sidereusnuntius/convivio/internal/messaging"
	"github.com/sidereusnuntius/convivio/internal/service"
	"github.com/sidereusnuntius/convivio/internal/storage"
)

// AppService owns the identity, session and community tables and enforces
// the relationship invariants before touching them. Relationship mutations
// touch two identities atomically, so a single coarse lock guards all three
// tables.
type AppService struct {
	Config config.Configuration
	Store  storage.Storage

	mu          sync.RWMutex
	users       map[string]*domain.User
	sessions    map[string]*domain.Session
	communities map[string]*domain.Community

	direct    messaging.Messenger
	broadcast messaging.Messenger
}

// New builds the service and restores the persisted snapshot, if any. A load
// failure is reported and leaves the system in its empty initial state.
func New(ctx context.Context, cfg config.Configuration, store storage.Storage) service.Service {
	s := &AppService{
		Config:      cfg,
		Store:       store,
		users:       map[string]*domain.User{},
		sessions:    map[string]*domain.Session{},
		communities: map[string]*domain.Community{},
	}
	dir := directory{s}
	s.direct = messaging.Direct{Users: dir}
	s.broadcast = messaging.Broadcast{Users: dir, Communities: dir}

	s.load(ctx)
	return s
}

func (s *AppService) load(ctx context.Context) {
	snap, err := s.Store.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			log.Info().Msg("no snapshot found, starting empty")
		} else {
			log.Error().Err(err).Msg("failed to load snapshot, starting empty")
		}
		return
	}

	// Re-key everything by login and name; the snapshot is a flat list.
	for _, u := range snap.Users {
		if u.Attributes == nil {
			u.Attributes = map[string]string{}
		}
		s.users[u.Login] = u
	}
	for _, c := range snap.Communities {
		s.communities[c.Name] = c
	}
	log.Info().
		Int("users", len(snap.Users)).
		Int("communities", len(snap.Communities)).
		Msg("snapshot loaded")
}

// directory exposes the tables to the messaging strategies without taking
// the service lock again; the calling operation already holds it.
type directory struct {
	s *AppService
}

func (d directory) User(login string) (*domain.User, error) {
	return d.s.user(login)
}

func (d directory) Community(name string) (*domain.Community, error) {
	return d.s.community(name)
}

func (s *AppService) user(login string) (*domain.User, error) {
	u, ok := s.users[login]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *AppService) session(id string) (*domain.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *AppService) community(name string) (*domain.Community, error) {
	c, ok := s.communities[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCommunityNotFound, name)
	}
	return c, nil
}
