package service

import (
	"context"
	"errors"
	"testing"
)

func TestRegister(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, "test-secret", 0)

	user, token, err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cretpass")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if token == "" {
		t.Fatal("Register() returned empty token")
	}
	if user.PasswordHash != "" {
		t.Fatal("Register() leaked password hash")
	}
	if user.Preferences.Theme != "light" || !user.Preferences.Notifications.Email {
		t.Fatalf("Register() did not apply default preferences: %+v", user.Preferences)
	}

	stored, err := repo.GetByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("stored user missing: %v", err)
	}
	if stored.PasswordHash == "" || stored.PasswordHash == "s3cretpass" {
		t.Fatal("password was not stored hashed")
	}
}

func TestRegisterDuplicates(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, "test-secret", 0)

	if _, _, err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cretpass"); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	tests := []struct {
		name     string
		username string
		email    string
	}{
		{"same email", "bob", "alice@example.com"},
		{"same username", "alice", "bob@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Register(context.Background(), tt.username, tt.email, "anotherpass")
			if !errors.Is(err, ErrUserAlreadyExists) {
				t.Fatalf("Register() error = %v, want ErrUserAlreadyExists", err)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, "test-secret", 0)

	if _, _, err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cretpass"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	token, user, err := svc.Login(context.Background(), "alice@example.com", "s3cretpass")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token == "" {
		t.Fatal("Login() returned empty token")
	}
	if user.PasswordHash != "" {
		t.Fatal("Login() leaked password hash")
	}

	stored, _ := repo.GetByEmail(context.Background(), "alice@example.com")
	if stored.LastLogin == nil {
		t.Fatal("Login() did not record last login")
	}
}

func TestLoginFailures(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, "test-secret", 0)

	if _, _, err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cretpass"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "alice@example.com", "wrong"},
		{"unknown email", "nobody@example.com", "s3cretpass"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(context.Background(), tt.email, tt.password)
			if !errors.Is(err, ErrAuthenticationFailed) {
				t.Fatalf("Login() error = %v, want ErrAuthenticationFailed", err)
			}
		})
	}
}
