// Package auth is the injected authentication collaborator for the HTTP
// layer. The core engine takes no dependency on identity; routes that
// mutate state simply require a principal from here.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginDisabled      = errors.New("login is not configured")
)

type Principal struct {
	Name string `json:"name"`
}

type Authenticator interface {
	Authenticate(username, password string) (*Principal, error)
}

// PasswordAuthenticator checks a single configured credential pair. The
// password is stored as a bcrypt hash, never in the clear.
type PasswordAuthenticator struct {
	username     string
	passwordHash string
}

func NewPasswordAuthenticator(username, passwordHash string) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		username:     username,
		passwordHash: passwordHash,
	}
}

func (a *PasswordAuthenticator) Authenticate(username, password string) (*Principal, error) {
	if a.passwordHash == "" {
		return nil, ErrLoginDisabled
	}
	if username != a.username {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &Principal{Name: username}, nil
}
