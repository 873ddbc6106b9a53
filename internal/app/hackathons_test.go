package app_test

import (
	"context"
	"errors"
	"testing"

	"hackquest-service/internal/app"
	"hackquest-service/internal/domain"
)

func TestSubmitProject(t *testing.T) {
	svc, users := newTestService(t)
	seedUser(t, users, "u1", 0)
	ctx := context.Background()

	sub, err := svc.SubmitProject(ctx, "u1", "hack-1", app.SubmissionInput{
		Title:     "Realtime Chat",
		GithubURL: "https://github.com/u1/chat",
	})
	if err != nil {
		t.Fatalf("submit project: %v", err)
	}
	if sub.ID == "" || sub.UserName != "User u1" || sub.HackathonID != "hack-1" {
		t.Fatalf("unexpected submission: %+v", sub)
	}

	user, _ := users.Get("u1")
	if user.HackathonsCompleted != 1 {
		t.Fatalf("expected hackathon counter to increment, got %+v", user)
	}

	subs, err := svc.Submissions(ctx, "hack-1")
	if err != nil || len(subs) != 1 {
		t.Fatalf("expected 1 recorded submission, got %v (%v)", subs, err)
	}
}

func TestSubmitProjectValidation(t *testing.T) {
	svc, users := newTestService(t)
	seedUser(t, users, "u1", 0)
	ctx := context.Background()

	if _, err := svc.SubmitProject(ctx, "u1", "hack-1", app.SubmissionInput{Title: "No repo"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := svc.SubmitProject(ctx, "u1", "nope", app.SubmissionInput{Title: "x", GithubURL: "y"}); !errors.Is(err, domain.ErrHackathonNotFound) {
		t.Fatalf("expected hackathon not found, got %v", err)
	}

	user, _ := users.Get("u1")
	if user.HackathonsCompleted != 0 {
		t.Fatalf("failed submissions must not mutate the user: %+v", user)
	}
}
