package domain

import "fmt"

// Relations holds one user's side of every relationship edge. All six lists
// store logins in insertion order; insertion order is observable through the
// query surface and must survive snapshot round-trips, so these are ordered
// slices rather than maps.
//
// Requests is asymmetric: it lives on the target and records who asked for
// friendship. Idols and Fans are the two independently-owned sides of one
// conceptual edge. Crushes and Enemies are declared unilaterally.
type Relations struct {
	Friends  []string `json:"friends"`
	Requests []string `json:"requests"`
	Idols    []string `json:"idols"`
	Fans     []string `json:"fans"`
	Crushes  []string `json:"crushes"`
	Enemies  []string `json:"enemies"`
}

// AddRequest records an unconfirmed friend request from login. The session
// orchestration guarantees no duplicate request reaches this point.
func (r *Relations) AddRequest(login string) {
	r.Requests = append(r.Requests, login)
}

// ConfirmFriend promotes login to a friend, clearing any pending request
// from them first.
func (r *Relations) ConfirmFriend(login string) {
	r.Requests = remove(r.Requests, login)
	r.Friends = append(r.Friends, login)
}

func (r *Relations) AddIdol(login string) error {
	if contains(r.Idols, login) {
		return fmt.Errorf("%w: already added as an idol", ErrDuplicateRelation)
	}
	r.Idols = append(r.Idols, login)
	return nil
}

func (r *Relations) AddFan(login string) error {
	if contains(r.Fans, login) {
		return fmt.Errorf("%w: already added as a fan", ErrDuplicateRelation)
	}
	r.Fans = append(r.Fans, login)
	return nil
}

func (r *Relations) AddCrush(login string) error {
	if contains(r.Crushes, login) {
		return fmt.Errorf("%w: already added as a crush", ErrDuplicateRelation)
	}
	r.Crushes = append(r.Crushes, login)
	return nil
}

func (r *Relations) AddEnemy(login string) error {
	if contains(r.Enemies, login) {
		return fmt.Errorf("%w: already added as an enemy", ErrDuplicateRelation)
	}
	r.Enemies = append(r.Enemies, login)
	return nil
}

func (r *Relations) HasFriend(login string) bool { return contains(r.Friends, login) }

// HasRequestFrom reports whether login has an unconfirmed friend request
// recorded on this side.
func (r *Relations) HasRequestFrom(login string) bool { return contains(r.Requests, login) }

func (r *Relations) HasIdol(login string) bool  { return contains(r.Idols, login) }
func (r *Relations) HasCrush(login string) bool { return contains(r.Crushes, login) }
func (r *Relations) HasEnemy(login string) bool { return contains(r.Enemies, login) }
