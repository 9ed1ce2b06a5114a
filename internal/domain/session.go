package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Session is the capability handle bound to one authenticated user. The id
// is the login plus the creation instant in unix milliseconds; sessions are
// never serialized and live only in the in-memory session table.
type Session struct {
	ID   string
	User *User
}

func NewSession(u *User) *Session {
	return &Session{
		ID:   u.Login + "_" + strconv.FormatInt(time.Now().UnixMilli(), 10),
		User: u,
	}
}

// AddFriend advances the friend state machine between the session's user and
// other. Enmity and self-reference are checked before any duplicate or
// pending state; an enemy declaration on either side blocks the relation
// outright. If other had already requested friendship the call confirms it
// and the relation becomes mutual; re-requesting a still-pending friendship
// and re-adding a confirmed friend are distinct errors.
func (s *Session) AddFriend(other *User) error {
	if other.IsEnemy(s.User.Login) {
		return fmt.Errorf("%w: %s is your enemy", ErrEnmityConflict, other.Name)
	}
	if s.User.Login == other.Login {
		return fmt.Errorf("%w: cannot befriend yourself", ErrSelfReference)
	}

	switch {
	case s.User.Relations.HasRequestFrom(other.Login):
		s.User.Relations.ConfirmFriend(other.Login)
		other.Relations.ConfirmFriend(s.User.Login)
	case other.Relations.HasRequestFrom(s.User.Login):
		return fmt.Errorf("%w: already requested, awaiting acceptance", ErrDuplicateRequest)
	case s.User.IsFriend(other.Login):
		return fmt.Errorf("%w: already added as a friend", ErrDuplicateRelation)
	default:
		other.Relations.AddRequest(s.User.Login)
	}
	return nil
}

// AddCrush declares a crush on other. When the interest turns out to be
// mutual, both users get a system note announcing the match.
func (s *Session) AddCrush(other *User) error {
	if other.IsEnemy(s.User.Login) {
		return fmt.Errorf("%w: %s is your enemy", ErrEnmityConflict, other.Name)
	}
	if s.User.Login == other.Login {
		return fmt.Errorf("%w: cannot have a crush on yourself", ErrSelfReference)
	}

	mutual := other.IsCrush(s.User.Login)
	if err := s.User.Relations.AddCrush(other.Login); err != nil {
		return err
	}
	if mutual {
		s.User.Receive(NewNote(SystemSender, fmt.Sprintf("%s is your crush", other.Name)))
		other.Receive(NewNote(SystemSender, fmt.Sprintf("%s is your crush", s.User.Name)))
	}
	return nil
}

// AddIdol records admiration: other joins the user's idols and the user
// joins other's fans. Both sides reject duplicates.
func (s *Session) AddIdol(other *User) error {
	if other.IsEnemy(s.User.Login) {
		return fmt.Errorf("%w: %s is your enemy", ErrEnmityConflict, other.Name)
	}
	if s.User.Login == other.Login {
		return fmt.Errorf("%w: cannot be a fan of yourself", ErrSelfReference)
	}

	if err := s.User.Relations.AddIdol(other.Login); err != nil {
		return err
	}
	return other.Relations.AddFan(s.User.Login)
}

// AddEnemy declares login an enemy. Enmity is unilateral and is never
// checked against the target's side.
func (s *Session) AddEnemy(login string) error {
	if s.User.Login == login {
		return fmt.Errorf("%w: cannot be your own enemy", ErrSelfReference)
	}
	return s.User.Relations.AddEnemy(login)
}

// CreateCommunity builds a community managed by the session's user, who is
// its first member.
func (s *Session) CreateCommunity(name, description string) *Community {
	c := NewCommunity(name, description, s.User.Login)
	c.AddMember(s.User.Login)
	s.User.JoinCommunity(name)
	return c
}

// Join enrolls the session's user in c.
func (s *Session) Join(c *Community) error {
	if contains(s.User.Communities, c.Name) {
		return fmt.Errorf("%w: %s", ErrDuplicateMembership, c.Name)
	}
	c.AddMember(s.User.Login)
	s.User.JoinCommunity(c.Name)
	return nil
}
