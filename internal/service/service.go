package service

import "context"

// Service is the full command surface of the system. Every operation either
// returns a plain value or fails with one of the domain sentinel errors;
// failures abort the operation with no partial mutation.
type Service interface {
	// CreateUser registers a new identity. The login must not be taken and
	// neither login nor password may be empty.
	CreateUser(ctx context.Context, login, password, name string) error
	// OpenSession checks the credentials and, if they match, mints a session
	// bound to the identity and returns its id.
	OpenSession(ctx context.Context, login, password string) (string, error)
	// UserAttribute reads one of the core fields (name, password, login) or
	// an extra attribute of the identity registered under login.
	UserAttribute(ctx context.Context, login, key string) (string, error)
	// EditProfile writes a core field or an extra attribute of the session's
	// identity. Renaming the login fails when the new login is registered.
	EditProfile(ctx context.Context, sessionID, key, value string) error

	AddFriend(ctx context.Context, sessionID, login string) error
	IsFriend(ctx context.Context, login, other string) (bool, error)
	Friends(ctx context.Context, login string) (string, error)

	AddIdol(ctx context.Context, sessionID, idol string) error
	IsFan(ctx context.Context, login, idol string) (bool, error)
	Fans(ctx context.Context, login string) (string, error)

	AddCrush(ctx context.Context, sessionID, crush string) error
	IsCrush(ctx context.Context, sessionID, crush string) (bool, error)
	Crushes(ctx context.Context, sessionID string) (string, error)

	AddEnemy(ctx context.Context, sessionID, enemy string) error

	// SendNote delivers a direct note to another user's personal inbox.
	SendNote(ctx context.Context, sessionID, receiver, body string) error
	// ReadNote dequeues the oldest note from the session user's inbox.
	ReadNote(ctx context.Context, sessionID string) (string, error)

	CreateCommunity(ctx context.Context, sessionID, name, description string) error
	CommunityDescription(ctx context.Context, name string) (string, error)
	CommunityOwner(ctx context.Context, name string) (string, error)
	CommunityMembers(ctx context.Context, name string) (string, error)
	Communities(ctx context.Context, login string) (string, error)
	JoinCommunity(ctx context.Context, sessionID, name string) error
	// SendPost fans one post out to every member of a community.
	SendPost(ctx context.Context, sessionID, community, body string) error
	// ReadPost dequeues the oldest community post from the session user's feed.
	ReadPost(ctx context.Context, sessionID string) (string, error)

	// RemoveUser deletes the session's identity and cascades: communities it
	// manages disappear, their names are pruned from every remaining user's
	// membership list, and personal notes it authored are dropped.
	RemoveUser(ctx context.Context, sessionID string) error

	// Reset discards all in-memory state and the persisted snapshot.
	Reset(ctx context.Context) error
	// Save persists the current state through the snapshot store.
	Save(ctx context.Context) error
}
