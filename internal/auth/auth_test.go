package auth

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordAuthenticator(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	authenticator := NewPasswordAuthenticator("admin", string(hash))

	principal, err := authenticator.Authenticate("admin", "hunter2")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if principal.Name != "admin" {
		t.Errorf("principal.Name = %q, want admin", principal.Name)
	}

	if _, err := authenticator.Authenticate("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("bad password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := authenticator.Authenticate("root", "hunter2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("bad username: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestPasswordAuthenticator_Disabled(t *testing.T) {
	authenticator := NewPasswordAuthenticator("admin", "")

	if _, err := authenticator.Authenticate("admin", "anything"); !errors.Is(err, ErrLoginDisabled) {
		t.Errorf("err = %v, want ErrLoginDisabled", err)
	}
}

func TestSessions_RoundTrip(t *testing.T) {
	sessions := NewSessions("test-secret", time.Hour)

	token, err := sessions.Issue(&Principal{Name: "admin"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	principal, err := sessions.Decode(token)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if principal.Name != "admin" {
		t.Errorf("principal.Name = %q, want admin", principal.Name)
	}
}

func TestSessions_WrongSecret(t *testing.T) {
	token, err := NewSessions("secret-a", time.Hour).Issue(&Principal{Name: "admin"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := NewSessions("secret-b", time.Hour).Decode(token); err == nil {
		t.Error("expected decode with the wrong secret to fail")
	}
}

func TestSessions_Expired(t *testing.T) {
	sessions := NewSessions("test-secret", -time.Minute)

	token, err := sessions.Issue(&Principal{Name: "admin"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := sessions.Decode(token); err == nil {
		t.Error("expected expired token to fail validation")
	}
}
