package service

import (
	"context"
	"errors"
	"testing"

	"fitflow/fitness-app/internal/repository/memory"
)

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()
	svc := NewAuthService(memory.NewStore(), "test-secret", 0)
	ctx := context.Background()

	user, err := svc.Register(ctx, "ana", "ana@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" || user.PasswordHash != "" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.Register(ctx, "ana2", "ana@example.com", "hunter2hunter2"); !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}

	token, loggedIn, err := svc.Login(ctx, "ana@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || loggedIn.ID != user.ID || loggedIn.PasswordHash != "" {
		t.Fatalf("unexpected login result: token=%q user=%+v", token, loggedIn)
	}

	if _, _, err := svc.Login(ctx, "ana@example.com", "wrong-password"); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed for bad password, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "ghost@example.com", "hunter2hunter2"); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed for unknown email, got %v", err)
	}
}
