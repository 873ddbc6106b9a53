package memory

import (
	"sync"

	"hackquest-service/internal/domain"
)

// UserStore is the in-memory user record store. All mutation goes through
// store methods under one mutex, so concurrent submissions for the same user
// cannot lose point or counter updates.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*domain.User
	order []string
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]*domain.User)}
}

// Create registers a new user. Email addresses are unique.
func (s *UserStore) Create(user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	u := user
	s.users[u.ID] = &u
	s.order = append(s.order, u.ID)
	return nil
}

// Get returns a copy of the user record.
func (s *UserStore) Get(id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return *user, nil
}

// GetByEmail returns a copy of the user record with the given email.
func (s *UserStore) GetByEmail(email string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			return *user, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

// List returns copies of all users in registration order.
func (s *UserStore) List() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.users[id])
	}
	return out
}

// ApplyQuizResult records a completed quiz for the user: the completion
// counter always increments, points are added, and on a pass the level is
// recomputed from lifetime points as floor(total/1000)+1. The recomputation
// happens on every pass, not only on level-up.
func (s *UserStore) ApplyQuizResult(userID string, score int, passed bool) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	user.QuizzesCompleted++
	user.TotalPoints += score
	if passed {
		user.Level = user.TotalPoints/1000 + 1
	}
	return *user, nil
}

// RecordHackathonCompletion increments the user's hackathon counter.
func (s *UserStore) RecordHackathonCompletion(userID string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	user.HackathonsCompleted++
	return *user, nil
}
