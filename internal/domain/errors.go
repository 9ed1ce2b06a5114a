package domain

import "errors"

// Expected business failures are sentinel errors so that callers can decide
// what to do with errors.Is instead of matching strings or unwinding panics.
var (
	ErrInvalidCredential = errors.New("invalid credential")
	ErrDuplicateIdentity = errors.New("account already exists")

	ErrUserNotFound      = errors.New("user not found")
	ErrSessionNotFound   = errors.New("session not found")
	ErrCommunityNotFound = errors.New("community does not exist")

	ErrDuplicateCommunity  = errors.New("community already exists")
	ErrDuplicateMembership = errors.New("already a member of this community")

	ErrDuplicateRelation = errors.New("duplicate relation")
	ErrDuplicateRequest  = errors.New("request already pending")
	ErrEnmityConflict    = errors.New("enmity conflict")
	ErrSelfReference     = errors.New("self reference")

	ErrNoteNotFound = errors.New("no notes")
	ErrInvalidNote  = errors.New("invalid note")
)
