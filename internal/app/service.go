package app

import (
	"context"
	"sync"
	"time"

	"hackquest-service/internal/domain"
)

// UserRepository is the user record store. Implementations must serialize
// mutations so concurrent submissions cannot lose updates.
type UserRepository interface {
	Create(user domain.User) error
	Get(id string) (domain.User, error)
	GetByEmail(email string) (domain.User, error)
	List() []domain.User
	ApplyQuizResult(userID string, score int, passed bool) (domain.User, error)
	RecordHackathonCompletion(userID string) (domain.User, error)
}

// AttemptRepository is the append-only quiz attempt history.
type AttemptRepository interface {
	Append(attempt domain.QuizAttempt)
	ForUser(userID string) []domain.QuizAttempt
	All() []domain.QuizAttempt
}

// SubmissionRepository holds hackathon project submissions.
type SubmissionRepository interface {
	Append(sub domain.Submission)
	ForHackathon(hackathonID string) []domain.Submission
}

// CatalogRepository serves read-only quiz and hackathon content.
type CatalogRepository interface {
	GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
	ListQuizzes(ctx context.Context) ([]domain.Quiz, error)
	GetHackathon(ctx context.Context, hackathonID string) (domain.Hackathon, error)
	ListHackathons(ctx context.Context) ([]domain.Hackathon, error)
}

// PointsMirror propagates point changes to an external scoreboard (a Redis
// sorted set). Mirror writes are best-effort; the user store stays
// authoritative.
type PointsMirror interface {
	AddPoints(ctx context.Context, userID string, delta int) error
}

// Service contains the gamification use cases: accounts, quiz scoring,
// progress aggregation, leaderboard ranking and hackathon submissions.
type Service struct {
	users       UserRepository
	attempts    AttemptRepository
	submissions SubmissionRepository
	catalog     CatalogRepository
	mirror      PointsMirror
	now         func() time.Time

	mu          sync.Mutex
	subscribers map[chan domain.Leaderboard]struct{}
}

func NewService(users UserRepository, attempts AttemptRepository, submissions SubmissionRepository, catalog CatalogRepository) *Service {
	return NewServiceWithClock(users, attempts, submissions, catalog, time.Now)
}

// NewServiceWithClock is test-only for deterministic timestamps.
func NewServiceWithClock(users UserRepository, attempts AttemptRepository, submissions SubmissionRepository, catalog CatalogRepository, now func() time.Time) *Service {
	return &Service{
		users:       users,
		attempts:    attempts,
		submissions: submissions,
		catalog:     catalog,
		now:         now,
		subscribers: make(map[chan domain.Leaderboard]struct{}),
	}
}

// SetPointsMirror attaches an optional external scoreboard mirror.
func (s *Service) SetPointsMirror(m PointsMirror) {
	s.mirror = m
}

// Subscribe returns a channel that receives a leaderboard snapshot whenever
// scores change, starting with the current board. The caller must invoke the
// returned cancel function to avoid leaks.
func (s *Service) Subscribe() (<-chan domain.Leaderboard, func()) {
	ch := make(chan domain.Leaderboard, 8)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	ch <- s.leaderboardSnapshot()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Service) broadcast() {
	lb := s.leaderboardSnapshot()
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subscribers {
		select {
		case ch <- lb:
		default:
			// Drop the stale snapshot so a slow client never blocks scoring.
			select {
			case <-ch:
			default:
			}
			ch <- lb
		}
	}
}
