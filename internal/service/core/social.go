package core

import (
	"context"

	"github.com/sidereusnuntius/convivio/internal/domain"
)

func (s *AppService) AddFriend(ctx context.Context, sessionID, login string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}
	other, err := s.user(login)
	if err != nil {
		return err
	}
	return sess.AddFriend(other)
}

func (s *AppService) IsFriend(ctx context.Context, login, other string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, err := s.user(login)
	if err != nil {
		return false, err
	}
	return u.IsFriend(other), nil
}

func (s *AppService) Friends(ctx context.Context, login string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, err := s.user(login)
	if err != nil {
		return "", err
	}
	return u.FriendList(), nil
}

func (s *AppService) AddIdol(ctx context.Context, sessionID, idol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	other, err := s.user(idol)
	if err != nil {
		return err
	}
	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}
	return sess.AddIdol(other)
}

func (s *AppService) IsFan(ctx context.Context, login, idol string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, err := s.user(login)
	if err != nil {
		return false, err
	}
	return u.IsFan(idol), nil
}

func (s *AppService) Fans(ctx context.Context, login string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, err := s.user(login)
	if err != nil {
		return "", err
	}
	return domain.FormatList(u.Relations.Fans), nil
}

func (s *AppService) AddCrush(ctx context.Context, sessionID, crush string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	other, err := s.user(crush)
	if err != nil {
		return err
	}
	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}
	return sess.AddCrush(other)
}

func (s *AppService) IsCrush(ctx context.Context, sessionID, crush string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return false, err
	}
	return sess.User.IsCrush(crush), nil
}

func (s *AppService) Crushes(ctx context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return "", err
	}
	return domain.FormatList(sess.User.Relations.Crushes), nil
}

func (s *AppService) AddEnemy(ctx context.Context, sessionID, enemy string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	other, err := s.user(enemy)
	if err != nil {
		return err
	}
	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}
	return sess.AddEnemy(other.Login)
}

func (s *AppService) SendNote(ctx context.Context, sessionID, receiver, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}
	return s.direct.Send(body, sess.User.Login, receiver)
}

func (s *AppService) ReadNote(ctx context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return "", err
	}
	return sess.User.ReadNote()
}
