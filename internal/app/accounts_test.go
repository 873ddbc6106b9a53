package app_test

import (
	"context"
	"errors"
	"testing"

	"hackquest-service/internal/domain"
)

func TestSignupAndLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Signup(ctx, "Alice", "alice@example.com", "hunter2")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.ID == "" || user.Level != 1 || user.TotalPoints != 0 {
		t.Fatalf("unexpected new user: %+v", user)
	}
	if user.Rank != 1 {
		t.Fatalf("sole user should rank #1, got %d", user.Rank)
	}

	if _, err := svc.Signup(ctx, "Alice Again", "alice@example.com", "pw"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected duplicate email rejection, got %v", err)
	}
	if _, err := svc.Signup(ctx, "", "x@example.com", "pw"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}

	logged, err := svc.Login(ctx, "alice@example.com", "anything")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != user.ID {
		t.Fatalf("login resolved wrong user: %+v", logged)
	}

	if _, err := svc.Login(ctx, "nobody@example.com", "pw"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("unknown email reads as bad credentials, got %v", err)
	}
}

func TestProfileCarriesRank(t *testing.T) {
	svc, users := newTestService(t)
	seedUser(t, users, "a", 100)
	seedUser(t, users, "b", 900)

	profile, err := svc.Profile(context.Background(), "a")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.Rank != 2 {
		t.Fatalf("expected rank 2 behind b, got %d", profile.Rank)
	}

	if _, err := svc.Profile(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
}
