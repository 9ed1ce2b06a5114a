package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/convivio/internal/domain"
	"github.com/sidereusnuntius/convivio/internal/storage"
	"github.com/sidereusnuntius/convivio/internal/validate"
)

func (s *AppService) CreateUser(ctx context.Context, login, password, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[login]; ok {
		return fmt.Errorf("%w: an account with this login already exists", domain.ErrDuplicateIdentity)
	}
	if err := validate.Login(login); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCredential, err)
	}
	if err := validate.Password(password); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCredential, err)
	}

	s.users[login] = domain.NewUser(login, password, name)
	return nil
}

func (s *AppService) OpenSession(ctx context.Context, login, password string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[login]
	if !ok || !u.VerifyPassword(password) {
		return "", fmt.Errorf("%w: wrong login or password", domain.ErrInvalidCredential)
	}

	sess := domain.NewSession(u)
	s.sessions[sess.ID] = sess
	return sess.ID, nil
}

func (s *AppService) UserAttribute(ctx context.Context, login, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, err := s.user(login)
	if err != nil {
		return "", err
	}
	return u.Attribute(key)
}

// EditProfile writes the named field of the session's identity. A login
// rename re-keys the identity table so the account stays addressable by its
// current login.
func (s *AppService) EditProfile(ctx context.Context, sessionID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}

	switch key {
	case domain.AttrName:
		sess.User.Name = value
	case domain.AttrPassword:
		sess.User.Password = value
	case domain.AttrLogin:
		if _, ok := s.users[value]; ok {
			return fmt.Errorf("%w: login already taken", domain.ErrInvalidCredential)
		}
		old := sess.User.Login
		delete(s.users, old)
		sess.User.Login = value
		s.users[value] = sess.User
		// Member and manager entries hold logins, so they follow the rename.
		for _, name := range sess.User.Communities {
			if c, ok := s.communities[name]; ok {
				c.RenameMember(old, value)
			}
		}
	default:
		sess.User.SetAttribute(key, value)
	}
	return nil
}

// RemoveUser deletes the session's identity and cascades. Communities the
// identity manages are dropped outright rather than reassigned; sessions
// bound to the identity and other users' relation sets are left alone.
func (s *AppService) RemoveUser(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}
	victim := sess.User
	if _, ok := s.users[victim.Login]; !ok {
		return domain.ErrUserNotFound
	}
	delete(s.users, victim.Login)

	var removed []string
	for name, c := range s.communities {
		if c.Manager == victim.Login {
			removed = append(removed, name)
			delete(s.communities, name)
		}
	}

	// Surviving communities must not keep the dead login; a later broadcast
	// would fail resolving it after already delivering to earlier members.
	for _, c := range s.communities {
		c.RemoveMember(victim.Login)
	}

	for _, u := range s.users {
		for _, name := range removed {
			u.LeaveCommunity(name)
		}
		u.DropNotesFrom(victim.Login)
	}
	return nil
}

func (s *AppService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = map[string]*domain.User{}
	s.sessions = map[string]*domain.Session{}
	s.communities = map[string]*domain.Community{}

	if err := s.Store.Reset(ctx); err != nil {
		log.Error().Err(err).Msg("failed to discard the persisted snapshot")
		return err
	}
	return nil
}

func (s *AppService) Save(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := storage.Snapshot{}
	for _, u := range s.users {
		snap.Users = append(snap.Users, u)
	}
	for _, c := range s.communities {
		snap.Communities = append(snap.Communities, c)
	}

	if err := s.Store.Save(ctx, snap); err != nil {
		log.Error().Err(err).Msg("failed to save snapshot")
		return err
	}
	log.Info().
		Int("users", len(snap.Users)).
		Int("communities", len(snap.Communities)).
		Msg("snapshot saved")
	return nil
}
