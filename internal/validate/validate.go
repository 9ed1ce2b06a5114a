package validate

import "errors"

// Credentials are plain text in this model, so validation only rejects what
// the system cannot key or check at all.

func Login(login string) error {
	if login == "" {
		return errors.New("empty login")
	}
	return nil
}

func Password(password string) error {
	if password == "" {
		return errors.New("empty password")
	}
	return nil
}
