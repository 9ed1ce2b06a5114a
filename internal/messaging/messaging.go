// Package messaging routes a message either to one user's inbox or, fanned
// out, to every member of a community. The caller picks the route per
// invocation by choosing the Messenger it hands the message to.
package messaging

import (
	"fmt"

	"github.com/sidereusnuntius/convivio/internal/domain"
)

type UserDirectory interface {
	User(login string) (*domain.User, error)
}

type CommunityDirectory interface {
	Community(name string) (*domain.Community, error)
}

// Messenger delivers one message from sender to receiver. What receiver
// names, a user or a community, depends on the implementation.
type Messenger interface {
	Send(body, sender, receiver string) error
}

// Direct delivers to a single user's personal inbox. Self-targeting is
// rejected, and so is sending to someone who lists the sender as an enemy.
type Direct struct {
	Users UserDirectory
}

func (d Direct) Send(body, sender, receiver string) error {
	to, err := d.Users.User(receiver)
	if err != nil {
		return err
	}
	if sender == receiver {
		return fmt.Errorf("%w: cannot send a note to yourself", domain.ErrInvalidNote)
	}
	if to.IsEnemy(sender) {
		return fmt.Errorf("%w: %s is your enemy", domain.ErrEnmityConflict, to.Name)
	}

	to.Receive(domain.NewNote(sender, body))
	return nil
}

// Broadcast delivers one post to every member of a community, the sender
// included if they are a member. Broadcast bypasses interpersonal blocking;
// no enmity or self-target checks apply.
type Broadcast struct {
	Users       UserDirectory
	Communities CommunityDirectory
}

func (b Broadcast) Send(body, sender, receiver string) error {
	community, err := b.Communities.Community(receiver)
	if err != nil {
		return err
	}

	post := domain.NewNote(sender, body)
	for _, member := range community.Members {
		u, err := b.Users.User(member)
		if err != nil {
			return err
		}
		u.ReceivePost(post)
	}
	return nil
}
