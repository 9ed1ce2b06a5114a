package domain

import "fmt"

// Attribute keys that map to dedicated fields instead of the open-ended bag.
const (
	AttrName     = "name"
	AttrPassword = "password"
	AttrLogin    = "login"
)

// User is a registered identity, uniquely keyed by Login. Inbox holds direct
// notes and Feed holds community posts; both are FIFO queues read from the
// front. Communities lists the names of communities the user belongs to.
type User struct {
	Login       string            `json:"login"`
	Name        string            `json:"name"`
	Password    string            `json:"password"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	Relations   Relations         `json:"relations"`
	Inbox       []Note            `json:"inbox"`
	Feed        []Note            `json:"feed"`
	Communities []string          `json:"communities"`
}

func NewUser(login, password, name string) *User {
	return &User{
		Login:      login,
		Password:   password,
		Name:       name,
		Attributes: map[string]string{},
	}
}

// VerifyPassword is a plain equality check; credentials carry no hashing in
// this model.
func (u *User) VerifyPassword(password string) bool {
	return u.Password == password
}

// Attribute resolves the core fields first and falls through to the extra
// attribute bag. Reading an attribute that was never filled is an error.
func (u *User) Attribute(key string) (string, error) {
	switch key {
	case AttrName:
		return u.Name, nil
	case AttrPassword:
		return u.Password, nil
	case AttrLogin:
		return u.Login, nil
	}
	value, ok := u.Attributes[key]
	if !ok {
		return "", fmt.Errorf("%w: attribute not filled", ErrInvalidCredential)
	}
	return value, nil
}

// SetAttribute stores or overwrites an extra attribute. Core fields are not
// written through here; the session handles those explicitly.
func (u *User) SetAttribute(key, value string) {
	if u.Attributes == nil {
		u.Attributes = map[string]string{}
	}
	u.Attributes[key] = value
}

// Receive enqueues a direct note at the back of the personal inbox.
func (u *User) Receive(n Note) {
	u.Inbox = append(u.Inbox, n)
}

// ReceivePost enqueues a community post at the back of the feed.
func (u *User) ReceivePost(n Note) {
	u.Feed = append(u.Feed, n)
}

// ReadNote dequeues the oldest direct note.
func (u *User) ReadNote() (string, error) {
	if len(u.Inbox) == 0 {
		return "", fmt.Errorf("%w: no notes to read", ErrNoteNotFound)
	}
	n := u.Inbox[0]
	u.Inbox = u.Inbox[1:]
	return n.Body, nil
}

// ReadPost dequeues the oldest community post.
func (u *User) ReadPost() (string, error) {
	if len(u.Feed) == 0 {
		return "", fmt.Errorf("%w: no posts to read", ErrNoteNotFound)
	}
	n := u.Feed[0]
	u.Feed = u.Feed[1:]
	return n.Body, nil
}

// IsFriend reports whether login is a confirmed friend.
func (u *User) IsFriend(login string) bool { return u.Relations.HasFriend(login) }

// IsFan reports whether the user is a fan of login, that is, login appears
// among the user's idols.
func (u *User) IsFan(login string) bool { return u.Relations.HasIdol(login) }

// IsCrush reports whether the user has declared a crush on login.
func (u *User) IsCrush(login string) bool { return u.Relations.HasCrush(login) }

// IsEnemy reports whether the user has declared login an enemy.
func (u *User) IsEnemy(login string) bool { return u.Relations.HasEnemy(login) }

// FriendList renders the friend list for the query surface.
func (u *User) FriendList() string {
	return FormatList(u.Relations.Friends)
}

// JoinCommunity records membership on the user's side.
func (u *User) JoinCommunity(name string) {
	u.Communities = append(u.Communities, name)
}

// LeaveCommunity drops name from the membership list, used when a community
// is cascaded away.
func (u *User) LeaveCommunity(name string) {
	u.Communities = remove(u.Communities, name)
}

// DropNotesFrom removes every personal note authored by sender. The feed is
// deliberately left untouched; community posts survive their author.
func (u *User) DropNotesFrom(sender string) {
	kept := u.Inbox[:0]
	for _, n := range u.Inbox {
		if n.Sender != sender {
			kept = append(kept, n)
		}
	}
	u.Inbox = kept
}
