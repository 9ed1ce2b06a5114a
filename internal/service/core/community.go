package core

import (
	"context"
	"fmt"

	"github.com/sidereusnuntius/convivio/internal/domain"
)

func (s *AppService) CreateCommunity(ctx context.Context, sessionID, name, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.communities[name]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateCommunity, name)
	}
	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}

	s.communities[name] = sess.CreateCommunity(name, description)
	return nil
}

func (s *AppService) CommunityDescription(ctx context.Context, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, err := s.community(name)
	if err != nil {
		return "", err
	}
	return c.Description, nil
}

func (s *AppService) CommunityOwner(ctx context.Context, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, err := s.community(name)
	if err != nil {
		return "", err
	}
	return c.Manager, nil
}

func (s *AppService) CommunityMembers(ctx context.Context, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, err := s.community(name)
	if err != nil {
		return "", err
	}
	return c.MemberList(), nil
}

func (s *AppService) Communities(ctx context.Context, login string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, err := s.user(login)
	if err != nil {
		return "", err
	}
	return domain.FormatList(u.Communities), nil
}

func (s *AppService) JoinCommunity(ctx context.Context, sessionID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}
	c, err := s.community(name)
	if err != nil {
		return err
	}
	return sess.Join(c)
}

func (s *AppService) SendPost(ctx context.Context, sessionID, community, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}
	return s.broadcast.Send(body, sess.User.Login, community)
}

func (s *AppService) ReadPost(ctx context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return "", err
	}
	return sess.User.ReadPost()
}
