package memory

import (
	"errors"
	"sync"
	"testing"

	"hackquest-service/internal/domain"
)

func TestUserStoreCreateAndLookup(t *testing.T) {
	store := NewUserStore()

	if err := store.Create(domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Level: 1}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Create(domain.User{ID: "u2", Name: "Bob", Email: "alice@example.com"}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected duplicate email rejection, got %v", err)
	}

	user, err := store.GetByEmail("alice@example.com")
	if err != nil || user.ID != "u1" {
		t.Fatalf("lookup by email failed: %v %+v", err, user)
	}
	if _, err := store.Get("missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestApplyQuizResultLevelRecompute(t *testing.T) {
	store := NewUserStore()
	if err := store.Create(domain.User{ID: "u1", Email: "a@b.c", Level: 1, TotalPoints: 950}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Failed attempt still counts as completed and still adds points, but
	// must not recompute the level.
	user, err := store.ApplyQuizResult("u1", 40, false)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if user.TotalPoints != 990 || user.QuizzesCompleted != 1 || user.Level != 1 {
		t.Fatalf("unexpected state after failed attempt: %+v", user)
	}

	// Passing attempt recomputes level from lifetime points.
	user, err = store.ApplyQuizResult("u1", 40, true)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if user.TotalPoints != 1030 || user.Level != 2 {
		t.Fatalf("expected level 2 at 1030 points, got %+v", user)
	}
}

func TestApplyQuizResultSerializesWriters(t *testing.T) {
	store := NewUserStore()
	if err := store.Create(domain.User{ID: "u1", Email: "a@b.c", Level: 1}); err != nil {
		t.Fatalf("create: %v", err)
	}

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.ApplyQuizResult("u1", 10, false); err != nil {
				t.Errorf("apply: %v", err)
			}
		}()
	}
	wg.Wait()

	user, _ := store.Get("u1")
	if user.TotalPoints != writers*10 || user.QuizzesCompleted != writers {
		t.Fatalf("lost updates: %+v", user)
	}
}
